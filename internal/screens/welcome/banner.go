package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/bunkwise/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██╗   ██╗███╗   ██╗██╗  ██╗██╗    ██╗██╗███████╗███████╗
 ██╔══██╗██║   ██║████╗  ██║██║ ██╔╝██║    ██║██║██╔════╝██╔════╝
 ██████╔╝██║   ██║██╔██╗ ██║█████╔╝ ██║ █╗ ██║██║███████╗█████╗
 ██╔══██╗██║   ██║██║╚██╗██║██╔═██╗ ██║███╗██║██║╚════██║██╔══╝
 ██████╔╝╚██████╔╝██║ ╚████║██║  ██╗╚███╔███╔╝██║███████║███████╗
 ╚═════╝  ╚═════╝ ╚═╝  ╚═══╝╚═╝  ╚═╝ ╚══╝╚══╝ ╚═╝╚══════╝╚══════╝`

const bannerCompact = "B U N K W I S E"

// bannerWidth is the widest line of bannerArt.
var bannerWidth = lipgloss.Width(bannerArt)

// RenderBanner returns the banner styled in the primary color, falling back
// to a single line when width is too narrow for the block letters.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
