package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tskpay/internal/ui"
	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

// Tabs is the shared selection context for a group of triggers and
// content panes. It holds the owner's current key and change callback and
// never changes the key on its own; the owner answers a request by calling
// SetValue, or ignores it to veto the change.
type Tabs struct {
	value         string
	onValueChange func(value string)
}

// NewTabs creates a context for value. A key that no trigger declares
// leaves every trigger inactive.
func NewTabs(value string, onValueChange func(value string)) *Tabs {
	return &Tabs{value: value, onValueChange: onValueChange}
}

// Value returns the current key.
func (t *Tabs) Value() string {
	return t.value
}

// SetValue is how the owner passes a new key down.
func (t *Tabs) SetValue(value string) {
	t.value = value
}

// SetOnValueChange replaces the change callback.
func (t *Tabs) SetOnValueChange(fn func(value string)) {
	t.onValueChange = fn
}

// IsActive reports whether key is the current key. Comparison is exact.
func (t *Tabs) IsActive(key string) bool {
	return t.value == key
}

// Request asks the owner to switch to key.
func (t *Tabs) Request(key string) {
	if t.onValueChange != nil {
		t.onValueChange(key)
	}
}

func requireTabs(tabs *Tabs, component string) error {
	if tabs == nil {
		return apperrors.NewConfigurationError(component, "Tabs")
	}
	return nil
}

// TabsTrigger is one selector bound to a Tabs context.
type TabsTrigger struct {
	BaseComponent
	tabs     *Tabs
	key      string
	label    string
	disabled bool
}

// NewTabsTrigger declares the selector for key. It fails with a
// ConfigurationError when tabs is nil.
func NewTabsTrigger(tabs *Tabs, key, label string) (*TabsTrigger, error) {
	if err := requireTabs(tabs, "TabsTrigger"); err != nil {
		return nil, err
	}
	return &TabsTrigger{
		BaseComponent: NewBaseComponent(),
		tabs:          tabs,
		key:           key,
		label:         label,
	}, nil
}

// MustTabsTrigger is NewTabsTrigger that panics on a missing context.
func MustTabsTrigger(tabs *Tabs, key, label string) *TabsTrigger {
	trigger, err := NewTabsTrigger(tabs, key, label)
	if err != nil {
		panic(err)
	}
	return trigger
}

// Key returns the trigger key.
func (tr *TabsTrigger) Key() string {
	return tr.key
}

// Label returns the trigger label.
func (tr *TabsTrigger) Label() string {
	return tr.label
}

// Active reports whether this trigger's key is the current key.
func (tr *TabsTrigger) Active() bool {
	return tr.tabs.IsActive(tr.key)
}

// WithDisabled sets the disabled state.
func (tr *TabsTrigger) WithDisabled(disabled bool) *TabsTrigger {
	tr.disabled = disabled
	return tr
}

// Activate requests the switch to this trigger's key. Activating the
// already active trigger still reports the request.
func (tr *TabsTrigger) Activate() {
	if tr.disabled {
		return
	}
	tr.tabs.Request(tr.key)
}

// View renders the trigger.
func (tr *TabsTrigger) View() string {
	return tr.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger, highlighted when active.
func (tr *TabsTrigger) ViewWithContext(ctx RenderContext) string {
	return tr.render(ctx, false)
}

func (tr *TabsTrigger) render(ctx RenderContext, focused bool) string {
	style := tr.ComputeStyle(ctx.Theme).Padding(0, 1)
	if tr.Active() {
		style = Background(PalettePrimary)(style, ctx.Theme).Bold(true)
	} else {
		style = style.Foreground(ctx.Theme.Palette.Muted.OnBase)
	}
	if focused {
		style = style.Underline(true)
	}
	if tr.disabled {
		style = style.Faint(true)
	}
	return style.Render(tr.label)
}

// TabsList lays triggers out in a row and moves a keyboard cursor over
// them. The cursor is local; only enter or space activates.
type TabsList struct {
	tabs     *Tabs
	triggers []*TabsTrigger
	cursor   int
	focused  bool
}

// NewTabsList groups triggers. It fails with a ConfigurationError when
// tabs is nil.
func NewTabsList(tabs *Tabs, triggers ...*TabsTrigger) (*TabsList, error) {
	if err := requireTabs(tabs, "TabsList"); err != nil {
		return nil, err
	}
	list := &TabsList{tabs: tabs, triggers: triggers}
	list.syncCursor()
	return list, nil
}

// Triggers returns the grouped triggers.
func (l *TabsList) Triggers() []*TabsTrigger {
	return l.triggers
}

// Cursor returns the index of the trigger under the keyboard cursor.
func (l *TabsList) Cursor() int {
	return l.cursor
}

func (l *TabsList) syncCursor() {
	for i, trigger := range l.triggers {
		if trigger.Active() {
			l.cursor = i
			return
		}
	}
}

// Update moves the cursor with left/right (h/l) and activates with enter
// or space. Number keys 1-9 activate the matching trigger directly.
func (l *TabsList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !l.focused || len(l.triggers) == 0 {
		return nil
	}

	switch s := key.String(); s {
	case "left", "h", "shift+tab":
		l.cursor = (l.cursor - 1 + len(l.triggers)) % len(l.triggers)
	case "right", "l", "tab":
		l.cursor = (l.cursor + 1) % len(l.triggers)
	case "enter", " ":
		l.triggers[l.cursor].Activate()
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if index := int(s[0] - '1'); index < len(l.triggers) {
				l.cursor = index
				l.triggers[index].Activate()
			}
		}
	}
	return nil
}

// Focus implements Focusable. The cursor starts on the active trigger.
func (l *TabsList) Focus() {
	l.focused = true
	l.syncCursor()
}

// Blur implements Focusable.
func (l *TabsList) Blur() { l.focused = false }

// Focused implements Focusable.
func (l *TabsList) Focused() bool { return l.focused }

// View renders the list.
func (l *TabsList) View() string {
	return l.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the triggers in a row.
func (l *TabsList) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(l.triggers))
	for i, trigger := range l.triggers {
		views = append(views, trigger.render(ctx, l.focused && i == l.cursor))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, interleave(views, " ")...)
}

// TabsContent renders body only while key is the current key.
type TabsContent struct {
	tabs *Tabs
	key  string
	body ui.Renderable
}

// NewTabsContent binds body to key. It fails with a ConfigurationError
// when tabs is nil.
func NewTabsContent(tabs *Tabs, key string, body ui.Renderable) (*TabsContent, error) {
	if err := requireTabs(tabs, "TabsContent"); err != nil {
		return nil, err
	}
	return &TabsContent{tabs: tabs, key: key, body: body}, nil
}

// Active reports whether the content is shown.
func (c *TabsContent) Active() bool {
	return c.tabs.IsActive(c.key)
}

// View renders the content.
func (c *TabsContent) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders body when active and nothing otherwise.
func (c *TabsContent) ViewWithContext(ctx RenderContext) string {
	if !c.Active() {
		return ""
	}
	return strings.TrimRight(Render(c.body, ctx), "\n")
}
