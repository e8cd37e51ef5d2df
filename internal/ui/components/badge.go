package components

import (
	"github.com/charmbracelet/lipgloss"
)

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantSecondary
	BadgeVariantDestructive
	BadgeVariantOutline
)

// Badge is a small status label.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// NewBadge creates a default badge.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
		variant:       BadgeVariantDefault,
	}
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge with the given theme context.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(theme Theme) lipgloss.Style {
	style := b.ComputeStyle(theme)
	if strategy := theme.Variants.Get(b.variant); strategy != nil {
		return strategy.Apply(style, theme)
	}
	return style
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// SecondaryBadge creates a secondary badge.
func SecondaryBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantSecondary)
}

// OutlineBadge creates an outline badge.
func OutlineBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantOutline)
}

// DestructiveBadge creates a destructive badge.
func DestructiveBadge(text string) *Badge {
	return NewBadge(text).WithVariant(BadgeVariantDestructive)
}
