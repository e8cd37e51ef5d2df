package components

import "strings"

const defaultDividerWidth = 40

// Divider renders a horizontal rule across the available width.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a thin divider.
func NewDivider() *Divider {
	d := &Divider{BaseComponent: NewBaseComponent(), char: "─"}
	d.SetAppliers(RuleColour())
	return d
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider at the explicit width, else the
// context width, else a fixed fallback.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width
	}
	if width <= 0 {
		width = defaultDividerWidth
	}
	return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
}

// WithWidth fixes the divider width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithChar sets the repeated character.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}
