package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/footprint/internal/report"
)

// Color palette: forest greens with warm warnings.
var (
	Primary   = lipgloss.Color("#22C55E") // Leaf Green
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Success   = lipgloss.Color("#4ADE80") // Light Green
	Error     = lipgloss.Color("#F87171") // Coral
	Text      = lipgloss.Color("#F1F5F9") // Off-white
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#14291D") // Moss
	Border    = lipgloss.Color("#365B45") // Fern
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Improved = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	Worsened = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)

// ReportStyles returns report decorations using the palette.
func ReportStyles() report.Styles {
	return report.Styles{
		Heading: Title.Render,
		Good:    Improved.Render,
		Bad:     Worsened.Render,
		Dim:     Hint.Render,
	}
}
