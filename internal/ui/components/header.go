package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a page or section heading with an optional description line.
type Header struct {
	BaseComponent
	title    string
	subtitle string
}

// NewHeader creates a header.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Typography(TypographyTitle))
	return h
}

// View renders the header.
func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header with the given theme context.
func (h *Header) ViewWithContext(ctx RenderContext) string {
	title := h.ComputeStyle(ctx.Theme).Render(h.title)
	if h.subtitle == "" {
		return title
	}

	subtitle := TypographyStyle(ctx.Theme, TypographySubtitle)
	if ctx.Width > 0 {
		subtitle = subtitle.Width(ctx.Width)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle.Render(h.subtitle))
}

// WithSubtitle adds a description line.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAppliers replaces the title modifiers.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.SetAppliers(appliers...)
	return h
}

// Title returns the heading text.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the description line.
func (h *Header) Subtitle() string {
	return h.subtitle
}
