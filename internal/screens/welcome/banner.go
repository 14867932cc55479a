package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/algoselect/internal/ui/theme"
)

const bannerArt = `
  █████╗ ██╗      ██████╗  ██████╗ ███████╗███████╗██╗     ███████╗ ██████╗████████╗
 ██╔══██╗██║     ██╔════╝ ██╔═══██╗██╔════╝██╔════╝██║     ██╔════╝██╔════╝╚══██╔══╝
 ███████║██║     ██║  ███╗██║   ██║███████╗█████╗  ██║     █████╗  ██║        ██║
 ██╔══██║██║     ██║   ██║██║   ██║╚════██║██╔══╝  ██║     ██╔══╝  ██║        ██║
 ██║  ██║███████╗╚██████╔╝╚██████╔╝███████║███████╗███████╗███████╗╚██████╗   ██║
 ╚═╝  ╚═╝╚══════╝ ╚═════╝  ╚═════╝ ╚══════╝╚══════╝╚══════╝╚══════╝ ╚═════╝   ╚═╝`

const bannerCompact = "A L G O S E L E C T"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 86

// RenderBanner returns the banner in the primary color, falling back to a
// compact form on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
