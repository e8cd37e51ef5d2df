package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectOption is one choice of a Select.
type SelectOption struct {
	Value string
	Label string
}

// SelectHandlers are the optional change callbacks of a Select.
type SelectHandlers struct {
	OnValueChange func(value string)
	OnChange      func(event ChangeEvent)
}

// Select is a controlled single choice. Moving the selection reports the
// neighbouring option; the displayed value only changes through SetValue.
type Select struct {
	BaseComponent
	id       string
	options  []SelectOption
	value    string
	handlers SelectHandlers
	focused  bool
	disabled bool
}

// NewSelect creates a select showing value.
func NewSelect(id string, options []SelectOption, value string, handlers SelectHandlers) *Select {
	return &Select{
		BaseComponent: NewBaseComponent(),
		id:            id,
		options:       options,
		value:         value,
		handlers:      handlers,
	}
}

// SetValue updates the displayed value.
func (s *Select) SetValue(value string) {
	s.value = value
}

// Value returns the displayed value.
func (s *Select) Value() string {
	return s.value
}

// SetHandlers replaces the change callbacks.
func (s *Select) SetHandlers(handlers SelectHandlers) {
	s.handlers = handlers
}

// WithDisabled sets the disabled state.
func (s *Select) WithDisabled(disabled bool) *Select {
	s.disabled = disabled
	return s
}

// Update moves a focused select with up/down or k/j.
func (s *Select) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok || !s.focused || len(s.options) == 0 {
		return nil
	}

	index := s.index()
	switch key.String() {
	case "up", "k", "left", "h":
		index--
	case "down", "j", "right", "l":
		index++
	default:
		return nil
	}
	if index < 0 || index >= len(s.options) {
		return nil
	}
	s.choose(s.options[index].Value, msg)
	return nil
}

// Choose reports value as the new selection. Choosing the displayed value
// or a value that is not an option does nothing.
func (s *Select) Choose(value string) {
	for _, option := range s.options {
		if option.Value == value {
			s.choose(value, nil)
			return
		}
	}
}

func (s *Select) choose(value string, msg tea.Msg) {
	if s.disabled || value == s.value {
		return
	}
	if s.handlers.OnValueChange != nil {
		s.handlers.OnValueChange(value)
	}
	if s.handlers.OnChange != nil {
		s.handlers.OnChange(ChangeEvent{ID: s.id, Value: value, Msg: msg})
	}
}

// index returns the position of the displayed value, or -1 when it
// matches no option, so that "down" lands on the first option.
func (s *Select) index() int {
	for i, option := range s.options {
		if option.Value == s.value {
			return i
		}
	}
	return -1
}

// Focus implements Focusable.
func (s *Select) Focus() { s.focused = true }

// Blur implements Focusable.
func (s *Select) Blur() { s.focused = false }

// Focused implements Focusable.
func (s *Select) Focused() bool { return s.focused }

// View renders the select.
func (s *Select) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every option on one line with the selected one
// marked.
func (s *Select) ViewWithContext(ctx RenderContext) string {
	parts := make([]string, 0, len(s.options))
	for _, option := range s.options {
		mark := "( )"
		if option.Value == s.value {
			mark = "(•)"
		}
		parts = append(parts, mark+" "+option.Label)
	}

	style := FocusRing(s.focused)(s.ComputeStyle(ctx.Theme), ctx.Theme)
	if s.disabled {
		style = style.Faint(true)
	}
	return style.Render(strings.Join(parts, "  "))
}
