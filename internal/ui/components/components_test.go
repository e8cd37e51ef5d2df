package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestButtonPress(t *testing.T) {
	count := 0
	button := NewButton("Shrani", func() { count++ })

	button.Press()
	assert.Equal(t, 1, count)

	button.WithDisabled(true).Press()
	assert.Equal(t, 1, count)

	assert.NotPanics(t, NewButton("Brez akcije", nil).Press)
}

func TestBadgeVariants(t *testing.T) {
	assert.Equal(t, BadgeVariantDefault, NewBadge("a").Variant())
	assert.Equal(t, BadgeVariantSecondary, SecondaryBadge("a").Variant())
	assert.Equal(t, BadgeVariantOutline, OutlineBadge("a").Variant())
	assert.Contains(t, OutlineBadge("3 zapadle").View(), "3 zapadle")
}

func TestVariantsRegisteredInDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	for _, variant := range []BadgeVariant{BadgeVariantDefault, BadgeVariantSecondary, BadgeVariantDestructive, BadgeVariantOutline} {
		assert.NotNil(t, theme.Variants.Get(variant))
	}
	for _, variant := range []ButtonVariant{ButtonVariantDefault, ButtonVariantSecondary, ButtonVariantDestructive, ButtonVariantOutline, ButtonVariantGhost} {
		assert.NotNil(t, theme.Variants.Get(variant))
	}
	assert.Nil(t, theme.Variants.Get("unknown"))
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	stack := VStack(NewText("a"), NewText(""), NewText("b")).WithGap(0)

	assert.Equal(t, "a\nb", stack.View())
	assert.Empty(t, VStack().View())
}

func TestCardRendersTitleAndChildren(t *testing.T) {
	card := NewCard(NewText("1.234,00 €")).WithTitle("Skupni odprti dolg").WithWidth(40)

	view := card.View()
	assert.Contains(t, view, "Skupni odprti dolg")
	assert.Contains(t, view, "1.234,00 €")
	assert.Equal(t, 40, lipgloss.Width(view))
}

func TestDividerUsesContextWidth(t *testing.T) {
	view := NewDivider().ViewWithContext(DefaultContext().WithWidth(12))
	assert.Equal(t, 12, lipgloss.Width(view))
}

func TestAddAppliersKeepsExisting(t *testing.T) {
	var order []string
	base := NewBaseComponent()
	base.SetAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { order = append(order, "first"); return s })
	base.AddAppliers(func(s lipgloss.Style, _ Theme) lipgloss.Style { order = append(order, "second"); return s })

	base.ComputeStyle(DefaultTheme())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestAlertShowsMessage(t *testing.T) {
	view := ErrorAlert("shranjevanje ni uspelo").WithTitle("Napaka").View()

	assert.Contains(t, view, "Napaka")
	assert.Contains(t, view, "shranjevanje ni uspelo")
}
