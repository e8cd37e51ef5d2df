package shell

import (
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

const (
	fallbackInitials = "U"
	fallbackName     = "Uporabnik"
	logoutLabel      = "Odjava"
)

// User is the signed-in person shown at the bottom of the sidebar.
// AvatarURL is kept for completeness; terminals show initials instead.
type User struct {
	Name      string
	AvatarURL string
}

// Initials returns the upper-cased first letters of up to two words of the
// user's name, or "U" when there is nothing to take them from.
func Initials(user *User) string {
	if user == nil {
		return fallbackInitials
	}

	var b strings.Builder
	for _, word := range strings.Split(user.Name, " ") {
		if word == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(r)
	}

	initials := []rune(strings.ToUpper(b.String()))
	if len(initials) > 2 {
		initials = initials[:2]
	}
	if len(initials) == 0 {
		return fallbackInitials
	}
	return string(initials)
}

// DisplayName returns the user's name or "Uporabnik".
func DisplayName(user *User) string {
	if user == nil || user.Name == "" {
		return fallbackName
	}
	return user.Name
}

// UserMenu shows the user and a private menu with the logout action.
type UserMenu struct {
	user     *User
	onLogout func()
	menu     *components.DropdownMenu
}

// NewUserMenu creates a closed menu. user and onLogout may be nil.
func NewUserMenu(user *User, onLogout func()) *UserMenu {
	m := &UserMenu{user: user, onLogout: onLogout}
	m.menu = components.NewDropdownMenu("", components.MenuItem{
		Label:  "⏻ " + logoutLabel,
		Action: m.logout,
	})
	return m
}

func (m *UserMenu) logout() {
	if m.onLogout != nil {
		m.onLogout()
	}
}

// SetUser replaces the displayed user.
func (m *UserMenu) SetUser(user *User) {
	m.user = user
}

// SetOnLogout replaces the logout callback.
func (m *UserMenu) SetOnLogout(fn func()) {
	m.onLogout = fn
}

// Toggle opens or closes the menu.
func (m *UserMenu) Toggle() {
	m.menu.Toggle()
}

// IsOpen reports whether the menu is shown.
func (m *UserMenu) IsOpen() bool {
	return m.menu.IsOpen()
}

// Logout runs the logout item: onLogout, if any, then close.
func (m *UserMenu) Logout() {
	m.menu.Select(0)
}

// Update routes keys to the open menu and reports whether they were used.
func (m *UserMenu) Update(msg tea.Msg) bool {
	return m.menu.Update(msg)
}

// View renders the menu.
func (m *UserMenu) View() string {
	return m.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the item list above the avatar row while open.
func (m *UserMenu) ViewWithContext(ctx components.RenderContext) string {
	name := components.EmphasisText(DisplayName(m.user)).ViewWithContext(ctx)
	row := lipgloss.JoinHorizontal(lipgloss.Center, avatarStyle(ctx.Theme).Render(Initials(m.user)), " ", name)
	if !m.menu.IsOpen() {
		return row
	}

	items := make([]string, 0, len(m.menu.Items()))
	for i, item := range m.menu.Items() {
		style := lipgloss.NewStyle().Padding(0, 1)
		if i == m.menu.Cursor() {
			style = components.Background(components.PaletteAccent)(style, ctx.Theme)
		}
		items = append(items, style.Render(item.Label))
	}
	list := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Theme.Palette.Border).
		Render(strings.Join(items, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, list, row)
}
