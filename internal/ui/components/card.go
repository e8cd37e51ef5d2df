package components

import (
	"github.com/alexisbeaulieu97/tskpay/internal/ui"
)

// Card is a bordered box with an optional title, description and footer.
type Card struct {
	BaseComponent
	title       string
	description string
	children    []ui.Renderable
	footer      ui.Renderable
	width       int
}

// NewCard creates a card holding children.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card. The border and padding take four
// columns, so children get ctx.Width minus four.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	width := c.width
	if width <= 0 {
		width = ctx.Width
	}

	inner := ctx
	if width > 4 {
		inner = ctx.WithWidth(width - 4)
	}

	body := VStack()
	if c.title != "" || c.description != "" {
		header := NewHeader(c.title)
		if c.description != "" {
			header.WithSubtitle(c.description)
		}
		body.Add(header)
	}
	body.Add(c.children...)
	if c.footer != nil {
		body.Add(NewDivider(), c.footer)
	}

	style := c.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Card).
		BorderForeground(ctx.Theme.Palette.Border).
		Padding(0, 1)
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(body.WithGap(1).ViewWithContext(inner))
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithDescription sets the line under the title.
func (c *Card) WithDescription(description string) *Card {
	c.description = description
	return c
}

// WithFooter adds a footer below a divider.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithWidth fixes the outer width.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithAppliers adds theme-based modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}
