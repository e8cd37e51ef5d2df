package components

import "github.com/charmbracelet/lipgloss"

// Text renders styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a text component.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with the default theme.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with ctx's theme.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if ctx.Width > 0 {
		style = style.MaxWidth(ctx.Width)
	}
	return style.Render(t.content)
}

// Content returns the text.
func (t *Text) Content() string {
	return t.content
}

// SetContent replaces the text.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers replaces the theme-based modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.SetAppliers(appliers...)
	return t
}

// TitleText renders bold title text.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyTitle))
}

// MutedText renders secondary, de-emphasised text.
func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyMuted))
}

// EmphasisText renders bold body text.
func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyEmphasis))
}

// LabelText renders a form label.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyLabel))
}
