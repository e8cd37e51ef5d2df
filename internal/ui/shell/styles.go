package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

const (
	defaultSidebarWidth = 30
	defaultBreakpoint   = 100
	appTitle            = "tskPay"
)

func navRowStyle(ctx components.RenderContext) lipgloss.Style {
	style := lipgloss.NewStyle().PaddingRight(1)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width)
	}
	return style
}

func sidebarStyle(theme components.Theme, width, height int) lipgloss.Style {
	style := lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Palette.Border)
	if height > 0 {
		style = style.Height(height)
	}
	return style
}

func avatarStyle(theme components.Theme) lipgloss.Style {
	return components.Background(components.PalettePrimary)(lipgloss.NewStyle().Padding(0, 1).Bold(true), theme)
}
