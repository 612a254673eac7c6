package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput and shows the last rejection below
// the field.
type AnswerInput struct {
	Model   textinput.Model
	Problem string
}

// NewAnswerInput creates a focused input limited to charLimit runes.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	if charLimit > 0 {
		ti.CharLimit = charLimit
	}
	ti.Focus()

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (a AnswerInput) Init() tea.Cmd {
	return a.Model.Focus()
}

// Update forwards messages to the text field. Typing clears the problem.
func (a AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	before := a.Model.Value()
	var cmd tea.Cmd
	a.Model, cmd = a.Model.Update(msg)
	if a.Model.Value() != before {
		a.Problem = ""
	}
	return a, cmd
}

// View renders the field and any problem text.
func (a AnswerInput) View() string {
	view := a.Model.View()
	if a.Problem != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+a.Problem)
	}
	return view
}

// Value returns the current input value.
func (a AnswerInput) Value() string {
	return a.Model.Value()
}

// Reject keeps the typed text and records why it was refused.
func (a *AnswerInput) Reject(problem string) {
	a.Problem = problem
}

// Clear empties the field for the next answer.
func (a *AnswerInput) Clear() {
	a.Model.SetValue("")
	a.Problem = ""
}
