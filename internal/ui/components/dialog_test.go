package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// renameOwner plays the parent: it owns the open flag and the group name
// and re-passes both after every callback.
type renameOwner struct {
	name   string
	open   bool
	calls  []string
	saved  []string
	dialog *PromptDialog
}

func newRenameOwner(name string, open bool) *renameOwner {
	o := &renameOwner{name: name, open: open}
	o.dialog = NewRenameGroupDialog(open, name,
		func(open bool) {
			o.calls = append(o.calls, "open-change")
			o.open = open
			o.dialog.SetOpen(open)
		},
		func(value string) {
			o.calls = append(o.calls, "save")
			o.saved = append(o.saved, value)
			o.name = value
			o.dialog.SetValue(value)
		},
	)
	return o
}

func TestPromptDialogSeedsDraftWhenOpened(t *testing.T) {
	o := newRenameOwner("Team A", true)

	assert.Equal(t, "Team A", o.dialog.Draft())
}

func TestPromptDialogBlankDraftStaysOpen(t *testing.T) {
	o := newRenameOwner("Team A", true)

	o.dialog.SetDraft("   ")
	o.dialog.Confirm()

	assert.Empty(t, o.calls)
	assert.True(t, o.dialog.IsOpen())
	assert.Equal(t, "Team A", o.name)
}

func TestPromptDialogCommitsTrimmedDraftThenCloses(t *testing.T) {
	o := newRenameOwner("Team A", true)

	o.dialog.SetDraft(" Team B ")
	o.dialog.Confirm()

	assert.Equal(t, []string{"save", "open-change"}, o.calls)
	assert.Equal(t, []string{"Team B"}, o.saved)
	assert.False(t, o.open)
	assert.False(t, o.dialog.IsOpen())
}

func TestPromptDialogCancelDiscardsDraft(t *testing.T) {
	o := newRenameOwner("Team A", true)

	o.dialog.SetDraft("Team Z")
	o.dialog.Cancel()

	assert.Equal(t, []string{"open-change"}, o.calls)
	assert.Empty(t, o.saved)
	assert.False(t, o.open)

	o.dialog.SetOpen(true)
	assert.Equal(t, "Team A", o.dialog.Draft())
}

func TestPromptDialogKeepsDraftWhileOpen(t *testing.T) {
	o := newRenameOwner("Team A", true)
	o.dialog.SetDraft("Team A2")

	o.dialog.SetValue("Renamed elsewhere")
	o.dialog.SetOpen(true)
	assert.Equal(t, "Team A2", o.dialog.Draft())

	o.dialog.SetOpen(false)
	o.dialog.SetOpen(true)
	assert.Equal(t, "Renamed elsewhere", o.dialog.Draft())
}

func TestPromptDialogClosedStartDoesNotSeedUntilOpened(t *testing.T) {
	o := newRenameOwner("Team A", false)
	assert.Empty(t, o.dialog.Draft())
	assert.Empty(t, o.dialog.View())

	o.dialog.SetOpen(true)
	assert.Equal(t, "Team A", o.dialog.Draft())
	assert.Contains(t, o.dialog.View(), "Preimenuj skupino")
}

func TestPromptDialogKeyboard(t *testing.T) {
	o := newRenameOwner("Team", true)

	for _, r := range " B" {
		o.dialog.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Equal(t, "Team B", o.dialog.Draft())

	o.dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"Team B"}, o.saved)

	o.dialog.SetOpen(true)
	o.dialog.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, []string{"save", "open-change", "open-change"}, o.calls)
	assert.Len(t, o.saved, 1)
}

func TestPromptDialogWithoutSaveStillCloses(t *testing.T) {
	closed := false
	dialog := NewRenameGroupDialog(true, "Team A", func(open bool) { closed = !open }, nil)

	dialog.SetDraft("Team B")
	dialog.Confirm()

	assert.True(t, closed)
}

func TestConfirmDialogConfirmsThenCloses(t *testing.T) {
	var calls []string
	dialog := NewConfirmDialog(ConfirmDialogOptions{Title: "Odjava", Message: "Ali se želite odjaviti?"}, true,
		func(open bool) {
			if !open {
				calls = append(calls, "close")
			}
		},
		func() { calls = append(calls, "confirm") },
	)

	dialog.Confirm()
	assert.Equal(t, []string{"confirm", "close"}, calls)

	calls = nil
	dialog.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	assert.Equal(t, []string{"close"}, calls)
}

func TestConfirmDialogView(t *testing.T) {
	dialog := NewConfirmDialog(ConfirmDialogOptions{
		Title:   "Izbriši",
		Message: "Tega ni mogoče razveljaviti.",
		Variant: ConfirmVariantDestructive,
	}, true, nil, nil)

	view := dialog.View()
	assert.Contains(t, view, "⚠ Izbriši")
	assert.Contains(t, view, "Potrdi")
	assert.Contains(t, view, "Prekliči")

	dialog.SetOpen(false)
	assert.Empty(t, dialog.View())
}

func TestDialogEscRequestsClose(t *testing.T) {
	var requested []bool
	dialog := NewDialog(true, func(open bool) { requested = append(requested, open) })

	dialog.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.Equal(t, []bool{false}, requested)
	assert.True(t, dialog.IsOpen(), "frame waits for the owner")
}

func TestDialogPlaceKeepsBackgroundWhileClosed(t *testing.T) {
	dialog := NewDialog(false, nil).WithTitle("Naslov")

	assert.Equal(t, "ozadje", dialog.Place(DefaultContext(), 80, 24, "ozadje"))
}

func TestPromptDialogClosedIgnoresConfirmAndCancel(t *testing.T) {
	o := newRenameOwner("Team A", true)
	o.dialog.SetDraft("Leftover")
	o.dialog.SetOpen(false)
	o.calls = nil

	o.dialog.Confirm()
	o.dialog.Cancel()

	assert.Empty(t, o.calls)
	assert.Empty(t, o.saved)
	assert.Equal(t, "Team A", o.name)
}

func TestConfirmDialogClosedIgnoresConfirm(t *testing.T) {
	confirmed := false
	dialog := NewConfirmDialog(ConfirmDialogOptions{Title: "Odjava"}, false, nil, func() { confirmed = true })

	dialog.Confirm()

	assert.False(t, confirmed)
}
