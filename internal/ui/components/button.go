package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantDefault ButtonVariant = iota
	ButtonVariantSecondary
	ButtonVariantDestructive
	ButtonVariantOutline
	ButtonVariantGhost
)

// Button is a pressable label. Pressing calls OnPress; nothing else changes.
type Button struct {
	BaseComponent
	label    string
	variant  ButtonVariant
	disabled bool
	focused  bool
	onPress  func()
}

// NewButton creates a default button.
func NewButton(label string, onPress func()) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantDefault,
		onPress:       onPress,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.label)
}

func (b *Button) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, theme)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Bold(true).Underline(true)
	}
	return style
}

// Update presses a focused button on enter or space.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !b.focused {
		return nil
	}
	switch key.String() {
	case "enter", " ":
		b.Press()
	}
	return nil
}

// Press calls OnPress unless the button is disabled.
func (b *Button) Press() {
	if b.disabled || b.onPress == nil {
		return
	}
	b.onPress()
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Focus implements Focusable.
func (b *Button) Focus() { b.focused = true }

// Blur implements Focusable.
func (b *Button) Blur() { b.focused = false }

// Focused implements Focusable.
func (b *Button) Focused() bool { return b.focused }

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// OutlineButton creates an outline button without an action, for
// keyboard hint rows.
func OutlineButton(label string) *Button {
	return NewButton(label, nil).WithVariant(ButtonVariantOutline)
}
