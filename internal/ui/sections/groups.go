package sections

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/tskpay/internal/billing"
	"github.com/alexisbeaulieu97/tskpay/internal/ui/components"
)

// GroupList shows the groups with the selected one marked. Selection is
// controlled: up/down report the neighbouring group through OnSelect and the
// owner calls SetSelected.
type GroupList struct {
	components.BaseComponent
	groups   []billing.Group
	selected string
	onSelect func(groupID string)
	focused  bool
}

// NewGroupList creates a list with selected marked.
func NewGroupList(groups []billing.Group, selected string, onSelect func(groupID string)) *GroupList {
	return &GroupList{
		BaseComponent: components.NewBaseComponent(),
		groups:        groups,
		selected:      selected,
		onSelect:      onSelect,
	}
}

// SetGroups replaces the listed groups.
func (l *GroupList) SetGroups(groups []billing.Group) {
	l.groups = groups
}

// Groups returns the listed groups.
func (l *GroupList) Groups() []billing.Group {
	return l.groups
}

// SetSelected marks groupID as selected.
func (l *GroupList) SetSelected(groupID string) {
	l.selected = groupID
}

// Selected returns the selected group, if it is listed.
func (l *GroupList) Selected() (billing.Group, bool) {
	for _, group := range l.groups {
		if group.ID == l.selected {
			return group, true
		}
	}
	return billing.Group{}, false
}

// SetOnSelect replaces the selection callback.
func (l *GroupList) SetOnSelect(fn func(groupID string)) {
	l.onSelect = fn
}

// Select reports groupID as the new selection.
func (l *GroupList) Select(groupID string) {
	if l.onSelect == nil || groupID == l.selected {
		return
	}
	l.onSelect(groupID)
}

// Update moves the selection with up/down or k/j while focused.
func (l *GroupList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !l.focused || len(l.groups) == 0 {
		return nil
	}

	index := l.index()
	switch key.String() {
	case "up", "k":
		index--
	case "down", "j":
		index++
	default:
		return nil
	}
	if index < 0 {
		index = 0
	}
	if index >= len(l.groups) {
		index = len(l.groups) - 1
	}
	l.Select(l.groups[index].ID)
	return nil
}

func (l *GroupList) index() int {
	for i, group := range l.groups {
		if group.ID == l.selected {
			return i
		}
	}
	return -1
}

// Focus implements components.Focusable.
func (l *GroupList) Focus() { l.focused = true }

// Blur implements components.Focusable.
func (l *GroupList) Blur() { l.focused = false }

// Focused implements components.Focusable.
func (l *GroupList) Focused() bool { return l.focused }

// View renders the list.
func (l *GroupList) View() string {
	return l.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders one group per line.
func (l *GroupList) ViewWithContext(ctx components.RenderContext) string {
	if len(l.groups) == 0 {
		return components.MutedText("Ni skupin.").ViewWithContext(ctx)
	}

	theme := ctx.Theme
	lines := make([]string, len(l.groups))
	for i, group := range l.groups {
		name := fitName(group.Name, ctx.Width)
		if group.ID == l.selected {
			style := components.Background(components.PaletteAccent)(l.ComputeStyle(theme), theme)
			style = components.FocusRing(l.focused)(style, theme)
			lines[i] = style.Render("› " + name)
			continue
		}
		lines[i] = components.TypographyStyle(theme, components.TypographyBody).Render("  " + name)
	}
	return strings.Join(lines, "\n")
}

// fitName truncates name so the two-column marker and name fit in width.
func fitName(name string, width int) string {
	if width <= 0 {
		return name
	}
	limit := width - 2
	if limit < 1 {
		limit = 1
	}
	if xansi.StringWidth(name) <= limit {
		return name
	}
	return xansi.Truncate(name, limit, "…")
}
