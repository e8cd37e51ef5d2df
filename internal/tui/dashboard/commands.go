package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tskpay/internal/preferences"
)

// themeEventBuffer bounds pending provider notifications. A dropped event is
// harmless because the handler reads the provider's current mode.
const themeEventBuffer = 8

// waitForThemeCmd blocks until the provider reports a change or done is
// closed, in which case it returns nil.
func waitForThemeCmd(events <-chan preferences.Mode, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case mode := <-events:
			return ThemeChangedMsg{Mode: mode}
		case <-done:
			return nil
		}
	}
}

// forwardTheme is the provider listener; it never blocks the provider and
// stops forwarding once done is closed.
func forwardTheme(events chan<- preferences.Mode, done <-chan struct{}) preferences.Listener {
	return func(mode preferences.Mode) {
		select {
		case <-done:
			return
		default:
		}
		select {
		case events <- mode:
		default:
		}
	}
}
