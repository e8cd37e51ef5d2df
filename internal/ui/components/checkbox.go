package components

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
)

// CheckboxHandlers are the optional change callbacks of a Checkbox.
// OnCheckedChange receives the new boolean first, then OnChange receives
// the raw event. Either may be nil.
type CheckboxHandlers struct {
	OnCheckedChange func(checked bool)
	OnChange        func(event ChangeEvent)
}

// Checkbox is a controlled boolean toggle. It never flips its own state:
// the owner re-passes the value through SetChecked.
type Checkbox struct {
	BaseComponent
	id       string
	label    string
	checked  bool
	disabled bool
	focused  bool
	handlers CheckboxHandlers
}

// NewCheckbox creates a checkbox showing checked.
func NewCheckbox(id, label string, checked bool, handlers CheckboxHandlers) *Checkbox {
	return &Checkbox{
		BaseComponent: NewBaseComponent(),
		id:            id,
		label:         label,
		checked:       checked,
		handlers:      handlers,
	}
}

// SetChecked updates the displayed value.
func (c *Checkbox) SetChecked(checked bool) {
	c.checked = checked
}

// Checked returns the displayed value.
func (c *Checkbox) Checked() bool {
	return c.checked
}

// SetHandlers replaces the change callbacks.
func (c *Checkbox) SetHandlers(handlers CheckboxHandlers) {
	c.handlers = handlers
}

// WithDisabled sets the disabled state.
func (c *Checkbox) WithDisabled(disabled bool) *Checkbox {
	c.disabled = disabled
	return c
}

// Update toggles a focused checkbox on space or enter.
func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !c.focused {
		return nil
	}
	switch key.String() {
	case " ", "enter":
		c.interact(msg)
	}
	return nil
}

// Toggle reports the opposite of the current value, as a click would.
func (c *Checkbox) Toggle() {
	c.interact(nil)
}

func (c *Checkbox) interact(msg tea.Msg) {
	if c.disabled {
		return
	}
	next := !c.checked
	if c.handlers.OnCheckedChange != nil {
		c.handlers.OnCheckedChange(next)
	}
	if c.handlers.OnChange != nil {
		c.handlers.OnChange(ChangeEvent{ID: c.id, Value: strconv.FormatBool(next), Checked: next, Msg: msg})
	}
}

// Focus implements Focusable.
func (c *Checkbox) Focus() { c.focused = true }

// Blur implements Focusable.
func (c *Checkbox) Blur() { c.focused = false }

// Focused implements Focusable.
func (c *Checkbox) Focused() bool { return c.focused }

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders "[x] label" with the focus ring when focused.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	box := "[ ]"
	if c.checked {
		box = "[x]"
	}

	style := FocusRing(c.focused)(c.ComputeStyle(ctx.Theme), ctx.Theme)
	if c.disabled {
		style = style.Faint(true)
	}
	if c.label == "" {
		return style.Render(box)
	}
	return style.Render(box + " " + c.label)
}
