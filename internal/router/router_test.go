package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/footprint/internal/screen"
)

// fakeScreen records what the router did to it.
type fakeScreen struct {
	title    string
	inits    int
	received []tea.Msg
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.received = append(s.received, msg)
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.title }
func (s *fakeScreen) Title() string        { return s.title }

type pingMsg struct{}

func titles(r *Router) []string {
	out := make([]string, 0, r.Depth())
	for _, s := range r.stack {
		out = append(out, s.Title())
	}
	return out
}

func sameTitles(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestNavigation(t *testing.T) {
	tests := []struct {
		name string
		ops  func(r *Router)
		want []string
	}{
		{
			name: "push",
			ops:  func(r *Router) { r.Push(&fakeScreen{title: "questions"}) },
			want: []string{"home", "questions"},
		},
		{
			name: "push then pop",
			ops: func(r *Router) {
				r.Push(&fakeScreen{title: "questions"})
				r.Pop()
			},
			want: []string{"home"},
		},
		{
			name: "pop at bottom is a no-op",
			ops:  func(r *Router) { r.Pop() },
			want: []string{"home"},
		},
		{
			name: "replace bottom",
			ops:  func(r *Router) { r.Replace(&fakeScreen{title: "results"}) },
			want: []string{"results"},
		},
		{
			name: "replace keeps depth",
			ops: func(r *Router) {
				r.Push(&fakeScreen{title: "questions"})
				r.Replace(&fakeScreen{title: "results"})
			},
			want: []string{"home", "results"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := New(&fakeScreen{title: "home"})
			tc.ops(r)
			if got := titles(r); !sameTitles(got, tc.want) {
				t.Errorf("stack = %v, want %v", got, tc.want)
			}
			if r.Active().Title() != tc.want[len(tc.want)-1] {
				t.Errorf("active = %q", r.Active().Title())
			}
		})
	}
}

func TestMessagesRunInit(t *testing.T) {
	r := New(&fakeScreen{title: "home"})

	pushed := &fakeScreen{title: "questions"}
	r.Update(Push(pushed)())
	if pushed.inits != 1 {
		t.Errorf("pushed screen Init ran %d times, want 1", pushed.inits)
	}

	replaced := &fakeScreen{title: "results"}
	r.Update(Replace(replaced)())
	if replaced.inits != 1 {
		t.Errorf("replacement Init ran %d times, want 1", replaced.inits)
	}
	if r.Depth() != 2 {
		t.Errorf("depth = %d, want 2", r.Depth())
	}

	r.Update(Pop())
	if r.Active().Title() != "home" {
		t.Errorf("active after pop = %q, want home", r.Active().Title())
	}
}

func TestUpdateForwardsToActiveOnly(t *testing.T) {
	bottom := &fakeScreen{title: "home"}
	top := &fakeScreen{title: "about"}
	r := New(bottom)
	r.Push(top)

	r.Update(pingMsg{})

	if len(top.received) != 1 {
		t.Errorf("top received %d messages, want 1", len(top.received))
	}
	if len(bottom.received) != 0 {
		t.Errorf("bottom received %d messages, want 0", len(bottom.received))
	}
	if got := r.View(80, 24); got != "about" {
		t.Errorf("View = %q, want about", got)
	}
}
