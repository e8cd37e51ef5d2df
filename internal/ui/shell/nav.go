// Package shell is the application frame: sidebar navigation, the user
// menu and the responsive layout that holds the active section.
package shell

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

// NavItem is one navigation entry. Active is decided by the owner.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// MainNav lists the sections. Choosing an item reports its href; which item
// is active only changes when the owner passes new items.
type MainNav struct {
	items      []NavItem
	cursor     int
	focused    bool
	onNavigate func(href string)
}

// NewMainNav creates the navigation list.
func NewMainNav(items []NavItem, onNavigate func(href string)) *MainNav {
	nav := &MainNav{onNavigate: onNavigate}
	nav.SetItems(items)
	return nav
}

// SetItems replaces the entries and moves the cursor to the active one.
func (n *MainNav) SetItems(items []NavItem) {
	n.items = items
	for i, item := range items {
		if item.Active {
			n.cursor = i
			return
		}
	}
	if n.cursor >= len(items) {
		n.cursor = 0
	}
}

// Items returns the entries.
func (n *MainNav) Items() []NavItem {
	return n.items
}

// Cursor returns the highlighted entry.
func (n *MainNav) Cursor() int {
	return n.cursor
}

// SetOnNavigate replaces the callback.
func (n *MainNav) SetOnNavigate(fn func(href string)) {
	n.onNavigate = fn
}

// Navigate reports the href of entry index. Without a callback nothing
// happens.
func (n *MainNav) Navigate(index int) {
	if index < 0 || index >= len(n.items) || n.onNavigate == nil {
		return
	}
	n.onNavigate(n.items[index].Href)
}

// Update moves the cursor with up/down (k/j) and navigates on enter.
func (n *MainNav) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !n.focused || len(n.items) == 0 {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if n.cursor > 0 {
			n.cursor--
		}
	case "down", "j":
		if n.cursor < len(n.items)-1 {
			n.cursor++
		}
	case "enter", " ":
		n.Navigate(n.cursor)
	}
	return nil
}

// Focus implements components.Focusable.
func (n *MainNav) Focus() { n.focused = true }

// Blur implements components.Focusable.
func (n *MainNav) Blur() { n.focused = false }

// Focused implements components.Focusable.
func (n *MainNav) Focused() bool { return n.focused }

// View renders the list.
func (n *MainNav) View() string {
	return n.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders one row per entry, the active one highlighted.
func (n *MainNav) ViewWithContext(ctx components.RenderContext) string {
	rows := make([]string, 0, len(n.items))
	for i, item := range n.items {
		style := components.Typography(components.TypographySubtitle)(navRowStyle(ctx), ctx.Theme)
		if item.Active {
			style = components.Background(components.PaletteAccent)(navRowStyle(ctx), ctx.Theme).Bold(true)
		}
		marker := "  "
		if n.focused && i == n.cursor {
			marker = "▸ "
			style = style.Underline(true)
		}
		rows = append(rows, style.Render(marker+item.Label))
	}
	return strings.Join(rows, "\n")
}
