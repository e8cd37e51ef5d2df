package components

import (
	"github.com/charmbracelet/lipgloss"
)

// ColourSet is a background colour together with the text colour that reads
// well on it. Every colour is adaptive: lipgloss picks the Light or Dark
// branch from its dark-background flag, which the preference presenter sets.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Surface     ColourSet
	Primary     ColourSet
	Secondary   ColourSet
	Muted       ColourSet
	Accent      ColourSet
	Destructive ColourSet
	Warning     ColourSet
	Border      lipgloss.AdaptiveColor
	Ring        lipgloss.AdaptiveColor
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteSurface     PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PalettePrimary     PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary   PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteMuted       PaletteSlot = func(p Palette) ColourSet { return p.Muted }
	PaletteAccent      PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteDestructive PaletteSlot = func(p Palette) ColourSet { return p.Destructive }
	PaletteWarning     PaletteSlot = func(p Palette) ColourSet { return p.Warning }
)

// TypographyVariant names a text preset.
type TypographyVariant int

const (
	TypographyBody TypographyVariant = iota
	TypographyTitle
	TypographySubtitle
	TypographyMuted
	TypographyEmphasis
	TypographyLabel
)

// TypographyScale holds the text presets.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
	Label    lipgloss.Style
}

// BorderSet groups the borders components draw with.
type BorderSet struct {
	Card   lipgloss.Border
	Dialog lipgloss.Border
	Badge  lipgloss.Border
}

// VariantRegistry maps component variants to style strategies so a theme
// can restyle variants without touching component code.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register maps variant to strategy.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get returns the strategy for variant, or nil.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling data.
type Theme struct {
	Palette    Palette
	Typography TypographyScale
	Borders    BorderSet
	Variants   *VariantRegistry
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the slate-based dashboard theme.
func DefaultTheme() Theme {
	palette := Palette{
		Surface:     ColourSet{Base: ac("#ffffff", "#020817"), OnBase: ac("#020817", "#f8fafc")},
		Primary:     ColourSet{Base: ac("#0f172a", "#f8fafc"), OnBase: ac("#f8fafc", "#0f172a")},
		Secondary:   ColourSet{Base: ac("#f1f5f9", "#1e293b"), OnBase: ac("#0f172a", "#f8fafc")},
		Muted:       ColourSet{Base: ac("#f1f5f9", "#1e293b"), OnBase: ac("#64748b", "#94a3b8")},
		Accent:      ColourSet{Base: ac("#e2e8f0", "#334155"), OnBase: ac("#0f172a", "#f8fafc")},
		Destructive: ColourSet{Base: ac("#ef4444", "#7f1d1d"), OnBase: ac("#f8fafc", "#f8fafc")},
		Warning:     ColourSet{Base: ac("#f59e0b", "#b45309"), OnBase: ac("#1c1917", "#fffbeb")},
		Border:      ac("#e2e8f0", "#1e293b"),
		Ring:        ac("#94a3b8", "#cbd5e1"),
	}

	theme := Theme{
		Palette:    palette,
		Typography: defaultTypography(palette),
		Borders: BorderSet{
			Card:   lipgloss.RoundedBorder(),
			Dialog: lipgloss.ThickBorder(),
			Badge:  lipgloss.HiddenBorder(),
		},
		Variants: NewVariantRegistry(),
	}
	registerButtonVariants(theme.Variants)
	registerBadgeVariants(theme.Variants)
	registerAlertVariants(theme.Variants)
	return theme
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)
	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true),
		Subtitle: body.Foreground(p.Muted.OnBase),
		Muted:    body.Foreground(p.Muted.OnBase).Faint(true),
		Emphasis: body.Bold(true),
		Label:    body.Bold(true).Foreground(p.Primary.Base),
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantDefault, NewCompositeStrategy(Background(PalettePrimary), PaddingX(2)))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(Background(PaletteSecondary), PaddingX(2)))
	registry.Register(ButtonVariantDestructive, NewCompositeStrategy(Background(PaletteDestructive), PaddingX(2)))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(Foreground(PalettePrimary), PaddingX(1), Brackets()))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(Foreground(PalettePrimary), PaddingX(2)))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(Background(PalettePrimary), PaddingX(1)))
	registry.Register(BadgeVariantSecondary, NewCompositeStrategy(Background(PaletteSecondary), PaddingX(1)))
	registry.Register(BadgeVariantDestructive, NewCompositeStrategy(Background(PaletteDestructive), PaddingX(1)))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(Foreground(PalettePrimary), Brackets()))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantDefault, NewCompositeStrategy(Foreground(PalettePrimary), BorderColour(lipgloss.NormalBorder())))
	registry.Register(AlertVariantDestructive, NewCompositeStrategy(Foreground(PaletteDestructive), BorderColour(lipgloss.NormalBorder())))
}

// Brackets draws "[" and "]" around single-line content.
func Brackets() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.
			Border(lipgloss.Border{Left: "[", Right: "]"}, false, true, false, true).
			BorderForeground(theme.Palette.Border)
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyTitle:
		return typo.Title
	case TypographySubtitle:
		return typo.Subtitle
	case TypographyMuted:
		return typo.Muted
	case TypographyEmphasis:
		return typo.Emphasis
	case TypographyLabel:
		return typo.Label
	default:
		return typo.Body
	}
}

// Background paints the slot's base colour with its matching text colour.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground sets the text colour to the slot's base colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// BorderColour draws border in the theme's border colour.
func BorderColour(border lipgloss.Border) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(border).BorderForeground(theme.Palette.Border)
	}
}

// PaddingX pads left and right by n cells.
func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

// Typography inherits a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

// FocusRing marks the focused control.
func FocusRing(focused bool) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if !focused {
			return base
		}
		return base.Foreground(theme.Palette.Ring).Bold(true)
	}
}

// RuleColour draws text in the border colour, for rules and separators.
func RuleColour() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Border)
	}
}
