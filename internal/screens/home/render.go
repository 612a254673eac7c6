package home

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/screens/welcome"
	"github.com/abhisek/footprint/internal/ui/theme"
)

// contentWidth returns the inner width shared by every section.
func contentWidth(frameWidth int) int {
	w := frameWidth - 6 // border + padding
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	bannerWidth := cw
	if compact {
		bannerWidth = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(welcome.RenderBanner(bannerWidth))
}

func renderTagline(cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Hint.Render("How big is your carbon footprint?"))
}

// renderMenu boxes the numbered menu so it lines up with the title.
func renderMenu(menu string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Padding(0, 1).
		Render(strings.TrimRight(menu, "\n"))
}

func renderStoreNote(path string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Answers are saved to " + path)
}

// renderFrame centers content in a double border filling the area.
func renderFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
