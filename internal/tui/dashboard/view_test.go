package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
)

func TestViewBeforeWindowSize(t *testing.T) {
	m, err := NewModel(Options{Preferences: preferences.NewProvider(nil, nil)})
	if err != nil {
		t.Fatal(err)
	}
	defer m.Close()

	m.width = 0
	assert.Equal(t, "Nalaganje...", m.View())
}

func TestOverviewView(t *testing.T) {
	m := newTestModel(t, nil)

	view := m.View()
	assert.Contains(t, view, "tskPay")
	assert.Contains(t, view, "Pregled")
	assert.Contains(t, view, "Skupni odprti dolg")
	assert.Contains(t, view, "511,50 €")
	assert.Contains(t, view, "Po tekmovalcih")
	assert.Contains(t, view, "Tekmovalec", "by-member table is the default tab")
	assert.NotContains(t, view, "Št. članov")
}

func TestOverviewByGroupView(t *testing.T) {
	m := newTestModel(t, nil)
	m.overviewTabs.SetValue(TabByGroup)

	view := m.View()
	assert.Contains(t, view, "Št. članov")
	assert.NotContains(t, view, "Tekmovalec")
}

func TestMembersView(t *testing.T) {
	m := newTestModel(t, nil)
	m.navigate(SectionMembers.Href())

	view := m.View()
	assert.Contains(t, view, "Člani · Mladinci")
	assert.Contains(t, view, "Žiga Novak")
	assert.NotContains(t, view, "Nika Krajnc")
}

func TestSettingsView(t *testing.T) {
	m := newTestModel(t, nil)
	m.navigate(SectionSettings.Href())

	view := m.View()
	assert.Contains(t, view, "[ ] Temni način")
	assert.Contains(t, view, "(•) Svetla")
	assert.Contains(t, view, "Prikazno ime")
}

func TestRenameDialogOverlay(t *testing.T) {
	m := newTestModel(t, nil)
	m.navigate(SectionMembers.Href())
	m.openRename()

	assert.Contains(t, m.View(), "Preimenuj skupino")
}

func TestHelpMarkdownListsBindings(t *testing.T) {
	md := helpMarkdown(newKeyMap())

	assert.True(t, strings.HasPrefix(md, "# tskPay pomoč"))
	assert.Contains(t, md, "| `ctrl+t` | tema |")
	assert.Contains(t, md, "| `r` | preimenuj skupino |")
}

func TestHelpCacheRebuildsOnModeChange(t *testing.T) {
	var cache helpCache

	first := cache.render(preferences.ModeLight, 60, "# Naslov")
	assert.Equal(t, first, cache.render(preferences.ModeLight, 60, "ignored while cached"))

	cache.render(preferences.ModeDark, 60, "# Naslov")
	assert.Equal(t, preferences.ModeDark, cache.mode)
	assert.Equal(t, "dark", markdownStyle(preferences.ModeDark))
	assert.Equal(t, "light", markdownStyle(preferences.ModeLight))
}

func TestCompactViewShowsMenuHeader(t *testing.T) {
	m := newTestModel(t, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	assert.Contains(t, m.View(), "☰ tskPay")
}
