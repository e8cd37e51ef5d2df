package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem is one entry of a DropdownMenu.
type MenuItem struct {
	Label       string
	Action      func()
	Destructive bool
}

// DropdownMenu owns its open flag: the trigger toggles it, choosing an item
// runs the item's action and closes it, esc closes it.
type DropdownMenu struct {
	BaseComponent
	trigger string
	items   []MenuItem
	open    bool
	cursor  int
}

// NewDropdownMenu creates a closed menu.
func NewDropdownMenu(trigger string, items ...MenuItem) *DropdownMenu {
	return &DropdownMenu{
		BaseComponent: NewBaseComponent(),
		trigger:       trigger,
		items:         items,
	}
}

// IsOpen reports whether the item list is shown.
func (d *DropdownMenu) IsOpen() bool {
	return d.open
}

// Toggle opens or closes the menu. Opening puts the cursor on the first item.
func (d *DropdownMenu) Toggle() {
	d.open = !d.open
	if d.open {
		d.cursor = 0
	}
}

// Close hides the item list.
func (d *DropdownMenu) Close() {
	d.open = false
}

// Items returns the menu entries.
func (d *DropdownMenu) Items() []MenuItem {
	return d.items
}

// Cursor returns the highlighted item index.
func (d *DropdownMenu) Cursor() int {
	return d.cursor
}

// Select runs the action of item index and closes the menu. Out of range
// indexes only close it.
func (d *DropdownMenu) Select(index int) {
	d.open = false
	if index < 0 || index >= len(d.items) {
		return
	}
	if action := d.items[index].Action; action != nil {
		action()
	}
}

// Update navigates an open menu. It reports whether msg was consumed so a
// parent can stop routing it.
func (d *DropdownMenu) Update(msg tea.Msg) bool {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !d.open {
		return false
	}

	switch key.String() {
	case "up", "k":
		if d.cursor > 0 {
			d.cursor--
		}
	case "down", "j":
		if d.cursor < len(d.items)-1 {
			d.cursor++
		}
	case "enter", " ":
		d.Select(d.cursor)
	case "esc":
		d.Close()
	default:
		return false
	}
	return true
}

// View renders the menu.
func (d *DropdownMenu) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger and, while open, the item list
// below it.
func (d *DropdownMenu) ViewWithContext(ctx RenderContext) string {
	trigger := d.ComputeStyle(ctx.Theme).Render(d.trigger)
	if !d.open || len(d.items) == 0 {
		return trigger
	}

	rows := make([]string, 0, len(d.items))
	for i, item := range d.items {
		style := lipgloss.NewStyle().Padding(0, 1)
		if item.Destructive {
			style = Foreground(PaletteDestructive)(style, ctx.Theme)
		}
		if i == d.cursor {
			style = Background(PaletteAccent)(style, ctx.Theme)
		}
		rows = append(rows, style.Render(item.Label))
	}

	list := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ctx.Theme.Palette.Border).
		Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, trigger, list)
}
