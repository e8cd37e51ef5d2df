package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

var themeOptions = []SelectOption{
	{Value: "light", Label: "Svetla"},
	{Value: "dark", Label: "Temna"},
}

func TestSelectKeyboardReportsNeighbour(t *testing.T) {
	var calls []string
	var got string
	sel := NewSelect("theme", themeOptions, "light", SelectHandlers{
		OnValueChange: func(v string) {
			calls = append(calls, "value")
			got = v
		},
		OnChange: func(ChangeEvent) { calls = append(calls, "change") },
	})
	sel.Focus()

	sel.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Equal(t, "dark", got)
	assert.Equal(t, []string{"value", "change"}, calls)
	assert.Equal(t, "light", sel.Value(), "select must not adopt the value itself")
}

func TestSelectStopsAtEnds(t *testing.T) {
	count := 0
	sel := NewSelect("theme", themeOptions, "light", SelectHandlers{OnValueChange: func(string) { count++ }})
	sel.Focus()

	sel.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Zero(t, count)

	sel.SetValue("dark")
	sel.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Zero(t, count)
}

func TestSelectChoose(t *testing.T) {
	var got []string
	sel := NewSelect("theme", themeOptions, "light", SelectHandlers{OnValueChange: func(v string) { got = append(got, v) }})

	sel.Choose("light")
	sel.Choose("sepia")
	sel.Choose("dark")

	assert.Equal(t, []string{"dark"}, got)
}

func TestSelectViewMarksValue(t *testing.T) {
	sel := NewSelect("theme", themeOptions, "dark", SelectHandlers{})

	view := sel.View()
	assert.Contains(t, view, "( ) Svetla")
	assert.Contains(t, view, "(•) Temna")
}
