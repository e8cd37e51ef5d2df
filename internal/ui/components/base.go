package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui"
)

// BaseComponent carries the raw style and the theme-aware style strategy
// every component embeds.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into a themed one.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a single theme-aware style transformation.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies StyleFuncs in order.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply implements StyleStrategy.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle resolves the component style against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers replaces the strategy with the given style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends style functions after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// RenderContext carries the theme and available width down the tree.
// Width <= 0 means unconstrained.
type RenderContext struct {
	Theme Theme
	Width int
}

// DefaultContext returns the default theme with no width limit.
func DefaultContext() RenderContext {
	return RenderContext{Theme: DefaultTheme()}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithWidth returns a copy of the context limited to width columns.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Width = width
	return r
}

// ContextualRenderable is a component that can receive the render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// Render draws child with ctx when it understands contexts.
func Render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Focusable is implemented by components that take keyboard input.
type Focusable interface {
	Focus()
	Blur()
	Focused() bool
}
