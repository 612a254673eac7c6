package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/ui/theme"
)

// StepBar shows how far through a fixed number of steps the user is.
type StepBar struct {
	Done  int
	Total int
	Width int
}

// NewStepBar creates a step bar.
func NewStepBar(done, total, width int) StepBar {
	return StepBar{Done: done, Total: total, Width: width}
}

// Fraction returns the completed share in [0, 1].
func (p StepBar) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	f := float64(p.Done) / float64(p.Total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// View renders the bar followed by an "n/total" counter.
func (p StepBar) View() string {
	counter := fmt.Sprintf("  %d/%d", p.Done, p.Total)

	barWidth := p.Width - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Fraction())
	empty := barWidth - filled

	return theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", empty)) +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)
}
