package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputHandlers are the optional change callbacks of an Input or Textarea.
// OnValueChange receives the new text first, then OnChange the raw event.
type InputHandlers struct {
	OnValueChange func(value string)
	OnChange      func(event ChangeEvent)
}

func (h InputHandlers) emit(id, value string, msg tea.Msg) {
	if h.OnValueChange != nil {
		h.OnValueChange(value)
	}
	if h.OnChange != nil {
		h.OnChange(ChangeEvent{ID: id, Value: value, Msg: msg})
	}
}

// Input is a controlled single-line text field backed by a bubbles
// textinput. Keystrokes are offered to the owner as changes; the field then
// shows whatever value the owner passed back.
type Input struct {
	BaseComponent
	id       string
	value    string
	model    textinput.Model
	handlers InputHandlers
	disabled bool
}

// NewInput creates an input showing value.
func NewInput(id, value string, handlers InputHandlers) *Input {
	model := textinput.New()
	model.Prompt = ""
	model.SetValue(value)
	return &Input{
		BaseComponent: NewBaseComponent(),
		id:            id,
		value:         value,
		model:         model,
		handlers:      handlers,
	}
}

// WithPlaceholder sets the text shown while the value is empty.
func (i *Input) WithPlaceholder(placeholder string) *Input {
	i.model.Placeholder = placeholder
	return i
}

// WithWidth sets the visible width in cells.
func (i *Input) WithWidth(width int) *Input {
	i.model.Width = width
	return i
}

// WithDisabled sets the disabled state.
func (i *Input) WithDisabled(disabled bool) *Input {
	i.disabled = disabled
	return i
}

// SetValue updates the displayed value.
func (i *Input) SetValue(value string) {
	i.value = value
	if i.model.Value() != value {
		i.model.SetValue(value)
	}
}

// Value returns the displayed value.
func (i *Input) Value() string {
	return i.value
}

// SetHandlers replaces the change callbacks.
func (i *Input) SetHandlers(handlers InputHandlers) {
	i.handlers = handlers
}

// Update lets the text model process msg and reports a changed value.
func (i *Input) Update(msg tea.Msg) tea.Cmd {
	if i.disabled || !i.model.Focused() {
		return nil
	}

	before := i.model.Value()
	var cmd tea.Cmd
	i.model, cmd = i.model.Update(msg)
	if after := i.model.Value(); after != before {
		i.handlers.emit(i.id, after, msg)
	}
	i.snap()
	return cmd
}

// Change reports value as if the user had typed it.
func (i *Input) Change(value string) {
	if i.disabled {
		return
	}
	i.handlers.emit(i.id, value, nil)
	i.snap()
}

func (i *Input) snap() {
	if i.model.Value() != i.value {
		i.model.SetValue(i.value)
	}
}

// Focus implements Focusable.
func (i *Input) Focus() { _ = i.model.Focus() }

// Blur implements Focusable.
func (i *Input) Blur() { i.model.Blur() }

// Focused implements Focusable.
func (i *Input) Focused() bool { return i.model.Focused() }

// View renders the input.
func (i *Input) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the field between brackets.
func (i *Input) ViewWithContext(ctx RenderContext) string {
	style := Brackets()(i.ComputeStyle(ctx.Theme), ctx.Theme)
	style = FocusRing(i.Focused())(style, ctx.Theme)
	if i.disabled {
		style = style.Faint(true)
	}
	return style.Render(i.model.View())
}
