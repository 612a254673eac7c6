package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/footprint/internal/router"
	"github.com/abhisek/footprint/internal/screen"
	"github.com/abhisek/footprint/internal/screens/about"
	"github.com/abhisek/footprint/internal/screens/questionnaire"
	"github.com/abhisek/footprint/internal/screens/results"
	"github.com/abhisek/footprint/internal/store"
	"github.com/abhisek/footprint/internal/ui/components"
	"github.com/abhisek/footprint/internal/ui/layout"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu components.Menu
	path string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the main menu. Records are read from and written to repo;
// path is only displayed.
func New(repo store.RecordRepo, path string, logger *zap.Logger) *HomeScreen {
	if logger == nil {
		logger = zap.NewNop()
	}

	items := []components.MenuItem{
		{Label: "Do the questionnaire", Action: func() tea.Cmd {
			return router.Push(questionnaire.New(repo, path, logger))
		}},
		{Label: "See previous results", Action: func() tea.Cmd {
			return router.Push(results.New(repo, path))
		}},
		{Label: "About this application", Action: func() tea.Cmd {
			return router.Push(about.New())
		}},
		{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
		path: path,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 80
	cw := contentWidth(width)

	sections := []string{
		renderTitle(cw, compact),
		renderTagline(cw),
		renderMenu(h.menu.View(), cw),
	}
	if !compact {
		sections = append(sections, renderStoreNote(h.path, cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "1-4", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
