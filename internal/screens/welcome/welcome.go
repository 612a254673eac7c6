// Package welcome shows the splash screen of the full-screen front-end.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/router"
	"github.com/abhisek/footprint/internal/screen"
	"github.com/abhisek/footprint/internal/ui/layout"
	"github.com/abhisek/footprint/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 600 * time.Millisecond
	phase2End    = 1200 * time.Millisecond
	totalDur     = 1800 * time.Millisecond
)

// The chimney smoke thins out until only the leaf is left.
var sceneFrames = []string{
	`    ░░▒▒▓▓
   ░▒▒▓▓
  ░▒▓
 ┌┴┐
 │ │  ▄▄▄
─┴─┴──███──`,
	`    ░  ░
   ░▒░
  ░▒
 ┌┴┐
 │ │  ▄▄▄
─┴─┴──███──`,
	`      ╭─╮
     ╭╯ │
     │ ╭╯
     ╰┬╯
  ▄▄▄ │
──███─┴────`,
}

type tickMsg time.Time

// WelcomeScreen animates a short splash and waits for a key before handing
// over to the screen built by next.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with next() on a key
// press.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return "Welcome"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.elapsed >= totalDur {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	return router.Replace(w.next())
}

func (w *WelcomeScreen) frame() string {
	switch {
	case w.elapsed < phase1End:
		return sceneFrames[0]
	case w.elapsed < phase2End:
		return sceneFrames[1]
	default:
		return sceneFrames[2]
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	color := theme.TextDim
	if w.elapsed >= phase2End {
		color = theme.Primary
	}
	sections := []string{
		lipgloss.NewStyle().Foreground(color).Render(w.frame()),
	}

	if w.elapsed >= totalDur {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
				Render("Welcome to the carbon footprint quiz"),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
