package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

func footerStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(theme.Palette.Muted.OnBase).
		PaddingLeft(1)
}

func helpOverlayStyle(theme components.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(theme.Borders.Dialog).
		BorderForeground(theme.Palette.Ring).
		Padding(1, 2)
}
