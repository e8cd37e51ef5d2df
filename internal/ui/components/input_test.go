package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeRunes(update func(tea.Msg) tea.Cmd, text string) {
	for _, r := range text {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestInputOwnerAcceptsChanges(t *testing.T) {
	name := "Ana"
	var input *Input
	input = NewInput("name", name, InputHandlers{
		OnValueChange: func(value string) {
			name = value
			input.SetValue(name)
		},
	})
	input.Focus()

	typeRunes(input.Update, " Novak")

	assert.Equal(t, "Ana Novak", name)
	assert.Equal(t, "Ana Novak", input.Value())
	assert.Contains(t, input.View(), "Ana Novak")
}

func TestInputOwnerVetoSnapsBack(t *testing.T) {
	proposed := ""
	input := NewInput("name", "Ana", InputHandlers{
		OnValueChange: func(value string) { proposed = value },
	})
	input.Focus()

	typeRunes(input.Update, "x")

	assert.Equal(t, "Anax", proposed)
	assert.Equal(t, "Ana", input.Value())
	assert.Equal(t, "Ana", input.model.Value(), "field must show the prop after a vetoed edit")
}

func TestInputHandlerOrder(t *testing.T) {
	var calls []string
	var event ChangeEvent
	input := NewInput("email", "", InputHandlers{
		OnValueChange: func(string) { calls = append(calls, "value") },
		OnChange: func(e ChangeEvent) {
			calls = append(calls, "change")
			event = e
		},
	})
	input.Focus()

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}
	input.Update(msg)

	assert.Equal(t, []string{"value", "change"}, calls)
	assert.Equal(t, "email", event.ID)
	assert.Equal(t, "a", event.Value)
	assert.Equal(t, msg, event.Msg)
}

func TestInputIgnoresKeysWhenBlurredOrDisabled(t *testing.T) {
	count := 0
	input := NewInput("n", "", InputHandlers{OnValueChange: func(string) { count++ }})

	typeRunes(input.Update, "ab")
	assert.Zero(t, count)

	input.Focus()
	input.WithDisabled(true)
	typeRunes(input.Update, "ab")
	input.Change("zz")
	assert.Zero(t, count)
}

func TestInputChangeReportsValue(t *testing.T) {
	var got []string
	input := NewInput("n", "", InputHandlers{OnValueChange: func(v string) { got = append(got, v) }})

	input.Change("Bančnik")

	require.Equal(t, []string{"Bančnik"}, got)
	assert.Empty(t, input.Value())
}

func TestInputWithoutHandlersIsInert(t *testing.T) {
	input := NewInput("n", "", InputHandlers{})
	input.Focus()
	assert.NotPanics(t, func() { typeRunes(input.Update, "abc") })
	assert.Empty(t, input.Value())
}

func TestTextareaOwnerAcceptsChanges(t *testing.T) {
	notes := ""
	var area *Textarea
	area = NewTextarea("notes", notes, InputHandlers{
		OnValueChange: func(value string) {
			notes = value
			area.SetValue(notes)
		},
	}).WithSize(40, 4)
	area.Focus()

	typeRunes(area.Update, "plačano")

	assert.Equal(t, "plačano", notes)
	assert.Equal(t, "plačano", area.Value())
}

func TestTextareaOwnerVetoSnapsBack(t *testing.T) {
	var calls []string
	area := NewTextarea("notes", "draft", InputHandlers{
		OnValueChange: func(string) { calls = append(calls, "value") },
		OnChange:      func(ChangeEvent) { calls = append(calls, "change") },
	})
	area.Focus()

	typeRunes(area.Update, "!")

	assert.Equal(t, []string{"value", "change"}, calls)
	assert.Equal(t, "draft", area.model.Value())
}
