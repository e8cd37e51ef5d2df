package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant specifies the visual style of an alert.
type AlertVariant int

const (
	AlertVariantDefault AlertVariant = iota
	AlertVariantDestructive
)

// Alert is a bordered notice with an icon, optional title and message.
type Alert struct {
	BaseComponent
	title   string
	message string
	variant AlertVariant
}

// NewAlert creates an informational alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// ErrorAlert creates a destructive alert.
func ErrorAlert(message string) *Alert {
	return NewAlert(message).WithVariant(AlertVariantDestructive)
}

// View renders the alert.
func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the alert with the provided render context.
func (a *Alert) ViewWithContext(ctx RenderContext) string {
	icon := "ℹ"
	if a.variant == AlertVariantDestructive {
		icon = "✗"
	}

	lines := make([]string, 0, 2)
	if a.title != "" {
		lines = append(lines, lipgloss.NewStyle().Bold(true).Render(icon+" "+a.title), a.message)
	} else {
		lines = append(lines, icon+" "+a.message)
	}

	style := a.ComputeStyle(ctx.Theme).Padding(0, 1)
	if strategy := ctx.Theme.Variants.Get(a.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	if a.variant == AlertVariantDestructive {
		style = style.BorderForeground(ctx.Theme.Palette.Destructive.Base)
	}
	if ctx.Width > 2 {
		style = style.Width(ctx.Width - 2)
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// WithVariant sets the alert variant.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WithTitle adds a bold first line.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// Message returns the alert message.
func (a *Alert) Message() string {
	return a.message
}
