// Package screen defines what the router needs from a full-screen view.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/footprint/internal/ui/layout"
)

// Screen is one page of the terminal UI. Screens are values held on the
// router stack; Update returns the replacement for the receiver.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the area between header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens whose footer hints differ from
// the defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
