package shell

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

func navItems(active string) []NavItem {
	items := []NavItem{
		{Label: "Pregled in poročila", Href: "/pregled"},
		{Label: "Člani in skupine", Href: "/clani"},
		{Label: "Nastavitve", Href: "/nastavitve"},
	}
	for i := range items {
		items[i].Active = items[i].Href == active
	}
	return items
}

func TestInitials(t *testing.T) {
	cases := map[string]struct {
		user *User
		want string
	}{
		"nil user":       {nil, "U"},
		"empty name":     {&User{}, "U"},
		"single word":    {&User{Name: "bančnik"}, "B"},
		"two words":      {&User{Name: "Ana Novak"}, "AN"},
		"three words":    {&User{Name: "ana maria novak"}, "AM"},
		"extra spaces":   {&User{Name: "  čeh  žiga "}, "ČŽ"},
		"only separator": {&User{Name: "   "}, "U"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Initials(tc.user))
		})
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Uporabnik", DisplayName(nil))
	assert.Equal(t, "Uporabnik", DisplayName(&User{}))
	assert.Equal(t, "Bančnik", DisplayName(&User{Name: "Bančnik"}))
}

func TestUserMenuLogoutRunsCallbackAndCloses(t *testing.T) {
	calls := 0
	menu := NewUserMenu(&User{Name: "Bančnik"}, func() { calls++ })

	menu.Toggle()
	assert.True(t, menu.IsOpen())
	assert.Contains(t, menu.View(), "Odjava")

	assert.True(t, menu.Update(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, 1, calls)
	assert.False(t, menu.IsOpen())
	assert.NotContains(t, menu.View(), "Odjava")
}

func TestUserMenuWithoutCallback(t *testing.T) {
	menu := NewUserMenu(nil, nil)
	menu.Toggle()

	assert.NotPanics(t, menu.Logout)
	assert.False(t, menu.IsOpen())
	assert.Contains(t, menu.View(), "Uporabnik")
}

func TestMainNavReportsHref(t *testing.T) {
	var got []string
	nav := NewMainNav(navItems("/pregled"), func(href string) { got = append(got, href) })
	nav.Focus()

	nav.Update(tea.KeyMsg{Type: tea.KeyDown})
	nav.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"/clani"}, got)
	assert.True(t, nav.Items()[0].Active, "active entry belongs to the owner")
}

func TestMainNavWithoutCallbackIsInert(t *testing.T) {
	nav := NewMainNav(navItems("/pregled"), nil)
	nav.Focus()

	assert.NotPanics(t, func() { nav.Update(tea.KeyMsg{Type: tea.KeyEnter}) })
}

func TestMainNavCursorFollowsActive(t *testing.T) {
	nav := NewMainNav(navItems("/nastavitve"), nil)
	assert.Equal(t, 2, nav.Cursor())

	nav.SetItems(navItems("/clani"))
	assert.Equal(t, 1, nav.Cursor())
}

func TestAppShellCollapsesBelowBreakpoint(t *testing.T) {
	shell := NewAppShell(Options{NavigationItems: navItems("/pregled"), Breakpoint: 100})
	shell.SetContent(components.NewText("vsebina"))

	shell.SetSize(120, 30)
	assert.False(t, shell.Compact())
	assert.True(t, shell.SidebarVisible())
	assert.Contains(t, shell.View(), "Pregled in poročila")
	assert.Contains(t, shell.View(), "vsebina")

	shell.SetSize(80, 30)
	assert.True(t, shell.Compact())
	assert.False(t, shell.SidebarVisible())
	assert.NotContains(t, shell.View(), "Člani in skupine")
	assert.Contains(t, shell.View(), "vsebina")

	shell.OpenSidebar()
	assert.True(t, shell.SidebarVisible())
	assert.Contains(t, shell.View(), "Člani in skupine")
}

func TestAppShellNavigationClosesCollapsedSidebar(t *testing.T) {
	var got string
	shell := NewAppShell(Options{NavigationItems: navItems("/pregled"), OnNavigate: func(href string) { got = href }})
	shell.SetSize(60, 20)
	shell.OpenSidebar()

	shell.Nav().Navigate(2)

	assert.Equal(t, "/nastavitve", got)
	assert.False(t, shell.SidebarVisible())
}
