package about

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/footprint"
	"github.com/abhisek/footprint/internal/screen"
	"github.com/abhisek/footprint/internal/ui/theme"
)

// AboutScreen shows what the application does.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)

// New creates an AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	return theme.Body.
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(footprint.About)
}

func (a *AboutScreen) Title() string {
	return "About"
}
