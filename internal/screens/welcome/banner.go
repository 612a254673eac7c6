package welcome

import (
	"github.com/abhisek/footprint/internal/ui/theme"
)

const bannerArt = ` ___         _            _     _
| __|__  ___| |_ _ __ _ _(_)_ _| |_
| _/ _ \/ _ \  _| '_ \ '_| | ' \  _|
|_|\___/\___/\__| .__/_| |_|_||_\__|
                |_|`

const bannerCompact = "F · O · O · T · P · R · I · N · T"

// RenderBanner returns the Footprint banner in the primary color, or a
// one-line version when fewer than 40 columns are available.
func RenderBanner(width int) string {
	if width < 40 {
		return theme.Title.Render(bannerCompact)
	}
	return theme.Title.Render(bannerArt)
}
