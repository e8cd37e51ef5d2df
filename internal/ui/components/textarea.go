package components

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// Textarea is the multi-line counterpart of Input.
type Textarea struct {
	BaseComponent
	id       string
	value    string
	model    textarea.Model
	handlers InputHandlers
	disabled bool
}

// NewTextarea creates a textarea showing value.
func NewTextarea(id, value string, handlers InputHandlers) *Textarea {
	model := textarea.New()
	model.ShowLineNumbers = false
	model.CharLimit = 0
	model.SetValue(value)
	return &Textarea{
		BaseComponent: NewBaseComponent(),
		id:            id,
		value:         value,
		model:         model,
		handlers:      handlers,
	}
}

// WithPlaceholder sets the text shown while the value is empty.
func (t *Textarea) WithPlaceholder(placeholder string) *Textarea {
	t.model.Placeholder = placeholder
	return t
}

// WithSize sets the visible width and height.
func (t *Textarea) WithSize(width, height int) *Textarea {
	t.model.SetWidth(width)
	t.model.SetHeight(height)
	return t
}

// WithDisabled sets the disabled state.
func (t *Textarea) WithDisabled(disabled bool) *Textarea {
	t.disabled = disabled
	return t
}

// SetValue updates the displayed value.
func (t *Textarea) SetValue(value string) {
	t.value = value
	if t.model.Value() != value {
		t.model.SetValue(value)
	}
}

// Value returns the displayed value.
func (t *Textarea) Value() string {
	return t.value
}

// SetHandlers replaces the change callbacks.
func (t *Textarea) SetHandlers(handlers InputHandlers) {
	t.handlers = handlers
}

// Update lets the text model process msg and reports a changed value.
func (t *Textarea) Update(msg tea.Msg) tea.Cmd {
	if t.disabled || !t.model.Focused() {
		return nil
	}

	before := t.model.Value()
	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	if after := t.model.Value(); after != before {
		t.handlers.emit(t.id, after, msg)
	}
	t.snap()
	return cmd
}

// Change reports value as if the user had typed it.
func (t *Textarea) Change(value string) {
	if t.disabled {
		return
	}
	t.handlers.emit(t.id, value, nil)
	t.snap()
}

func (t *Textarea) snap() {
	if t.model.Value() != t.value {
		t.model.SetValue(t.value)
	}
}

// Focus implements Focusable.
func (t *Textarea) Focus() { _ = t.model.Focus() }

// Blur implements Focusable.
func (t *Textarea) Blur() { t.model.Blur() }

// Focused implements Focusable.
func (t *Textarea) Focused() bool { return t.model.Focused() }

// View renders the textarea.
func (t *Textarea) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the textarea.
func (t *Textarea) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if t.disabled {
		style = style.Faint(true)
	}
	return style.Render(t.model.View())
}
