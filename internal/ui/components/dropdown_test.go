package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDropdownMenuSelectRunsActionAndCloses(t *testing.T) {
	var ran []string
	menu := NewDropdownMenu("Izvoz",
		MenuItem{Label: "Izvozi CSV", Action: func() { ran = append(ran, "csv") }},
		MenuItem{Label: "Izvozi PDF", Action: func() { ran = append(ran, "pdf") }},
	)

	menu.Toggle()
	assert.True(t, menu.IsOpen())

	assert.True(t, menu.Update(tea.KeyMsg{Type: tea.KeyDown}))
	assert.True(t, menu.Update(tea.KeyMsg{Type: tea.KeyEnter}))

	assert.Equal(t, []string{"pdf"}, ran)
	assert.False(t, menu.IsOpen())
}

func TestDropdownMenuEscCloses(t *testing.T) {
	menu := NewDropdownMenu("Meni", MenuItem{Label: "A"})
	menu.Toggle()

	assert.True(t, menu.Update(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, menu.IsOpen())
	assert.False(t, menu.Update(tea.KeyMsg{Type: tea.KeyEsc}), "closed menu does not consume keys")
}

func TestDropdownMenuToggleResetsCursor(t *testing.T) {
	menu := NewDropdownMenu("Meni", MenuItem{Label: "A"}, MenuItem{Label: "B"})
	menu.Toggle()
	menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, menu.Cursor())

	menu.Toggle()
	menu.Toggle()
	assert.Equal(t, 0, menu.Cursor())
}

func TestDropdownMenuView(t *testing.T) {
	menu := NewDropdownMenu("Meni", MenuItem{Label: "Odjava", Destructive: true})
	assert.NotContains(t, menu.View(), "Odjava")

	menu.Toggle()
	assert.Contains(t, menu.View(), "Odjava")
}

func TestDropdownMenuItemWithoutAction(t *testing.T) {
	menu := NewDropdownMenu("Meni", MenuItem{Label: "A"})
	menu.Toggle()

	assert.NotPanics(t, func() { menu.Select(0) })
	assert.False(t, menu.IsOpen())

	menu.Toggle()
	menu.Select(5)
	assert.False(t, menu.IsOpen())
}
