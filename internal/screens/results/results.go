// Package results shows every saved record and the progress summary.
package results

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/footprint"
	"github.com/abhisek/footprint/internal/report"
	"github.com/abhisek/footprint/internal/router"
	"github.com/abhisek/footprint/internal/screen"
	"github.com/abhisek/footprint/internal/store"
	"github.com/abhisek/footprint/internal/ui/layout"
	"github.com/abhisek/footprint/internal/ui/theme"
)

type recordsLoadedMsg struct {
	Records []footprint.Record
	Err     error
}

// ResultsScreen displays the report for the record file.
type ResultsScreen struct {
	repo    store.RecordRepo
	path    string
	records []footprint.Record
	loadErr error
	loaded  bool
	offset  int
	lastH   int
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen reading from repo. path names the file in
// the "no results" message.
func New(repo store.RecordRepo, path string) *ResultsScreen {
	return &ResultsScreen{repo: repo, path: path}
}

func (s *ResultsScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		records, err := repo.Load(context.Background())
		return recordsLoadedMsg{Records: records, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Previous Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		s.records = msg.Records
		s.loadErr = msg.Err
		s.loaded = true
		s.offset = 0
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.offset > 0 {
				s.offset--
			}
		case "down", "j":
			s.offset++
		case "pgup":
			s.offset -= s.page()
			if s.offset < 0 {
				s.offset = 0
			}
		case "pgdown", "space":
			s.offset += s.page()
		case "home", "g":
			s.offset = 0
		case "enter", "q":
			return s, router.Pop
		}
	}
	return s, nil
}

func (s *ResultsScreen) page() int {
	if s.lastH > 1 {
		return s.lastH - 1
	}
	return 1
}

// Text returns the plain report, or the load failure message.
func (s *ResultsScreen) Text() string {
	if s.loadErr != nil {
		return report.LoadErrorMessage(s.loadErr, s.path)
	}
	return report.Render(s.records, report.PlainStyles())
}

func (s *ResultsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading results...")
	}
	if s.loadErr != nil {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render("\n\n" + report.LoadErrorMessage(s.loadErr, s.path))
	}

	s.lastH = height
	body, offset := layout.Window(report.Render(s.records, theme.ReportStyles()), s.offset, height)
	s.offset = offset

	return lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		Render(body)
}
