package questionnaire

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/footprint"
	"github.com/abhisek/footprint/internal/ui/components"
	"github.com/abhisek/footprint/internal/ui/theme"
)

func (s *QuestionnaireScreen) View(width, height int) string {
	cw := width - 8
	if cw > 72 {
		cw = 72
	}

	var b strings.Builder
	b.WriteString(components.NewStepBar(s.step, len(footprint.Questions), cw).View())
	b.WriteString("\n\n")

	switch s.phase {
	case PhaseAsking:
		b.WriteString(s.renderQuestion(cw))
	case PhaseSaving:
		b.WriteString(s.renderTotal())
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render("Saving..."))
	case PhaseDone:
		b.WriteString(s.renderTotal())
		b.WriteString("\n\n")
		b.WriteString(s.renderSaveStatus())
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}

func (s *QuestionnaireScreen) renderQuestion(cw int) string {
	q := s.Current()
	question := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(cw).
		Render("Question: " + q.Text)
	return question + "\n\n" + s.input.View()
}

func (s *QuestionnaireScreen) renderTotal() string {
	return theme.Title.Render(fmt.Sprintf("Total Contamination: %.2f kg CO₂", s.record.Total))
}

func (s *QuestionnaireScreen) renderSaveStatus() string {
	if s.saveErr != nil {
		return theme.Worsened.Render(fmt.Sprintf("Could not save your answers: %v", s.saveErr))
	}
	return theme.Improved.Render("Saved to " + s.path)
}
