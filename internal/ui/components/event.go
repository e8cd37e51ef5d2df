package components

import tea "github.com/charmbracelet/bubbletea"

// ChangeEvent is the raw notification a controlled primitive hands to its
// OnChange handler. Msg is the message that caused the change, or nil when
// the interaction was triggered directly (Toggle, Change, Choose).
type ChangeEvent struct {
	ID      string
	Value   string
	Checked bool
	Msg     tea.Msg
}
