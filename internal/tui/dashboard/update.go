package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// footerHeight is the space reserved under the shell for the key help.
const footerHeight = 1

// Update handles incoming messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// System messages
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.shell.SetSize(msg.Width, msg.Height-footerHeight)
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKeyPress(msg)
		if m.quitting {
			m.Close()
			return m, tea.Quit
		}
		return m, cmd

	// Theme messages
	case ThemeChangedMsg:
		m.applyMode(m.prefs.Mode())
		return m, waitForThemeCmd(m.themeEvents, m.themeDone)
	}

	return m, nil
}

// handleKeyPress routes a key to the topmost layer that wants it: dialogs,
// then the help overlay, then the user menu, then global bindings, then the
// focused control.
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return nil
	}

	switch {
	case m.logoutOpen:
		return m.logoutDialog.Update(msg)
	case m.renameOpen:
		return m.renameDialog.Update(msg)
	case m.viewMode == ViewHelp:
		return m.handleHelpKeys(msg)
	case m.shell.UserMenu().IsOpen():
		m.shell.UserMenu().Update(msg)
		return nil
	}

	if cmd, handled := m.handleGlobalKeys(msg); handled {
		return cmd
	}
	return m.updateFocused(msg)
}

func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Dismiss):
		m.viewMode = ViewMain
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	}
	return nil
}

// handleGlobalKeys handles bindings that work in every section. Printable
// bindings yield to a focused text field.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.NextFocus):
		m.setFocus(m.focus + 1)
		return nil, true
	case key.Matches(msg, m.keys.PrevFocus):
		m.setFocus(m.focus - 1)
		return nil, true
	case key.Matches(msg, m.keys.ToggleTheme):
		m.toggleTheme()
		return nil, true
	case key.Matches(msg, m.keys.ToggleSidebar):
		m.shell.ToggleSidebar()
		return nil, true
	case msg.String() == "esc" && m.errorMsg != "":
		m.clearError()
		return nil, true
	}

	if m.textEntry() {
		return nil, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.viewMode = ViewHelp
		return nil, true
	case key.Matches(msg, m.keys.UserMenu):
		if m.shell.Compact() {
			m.shell.OpenSidebar()
		}
		m.shell.UserMenu().Toggle()
		return nil, true
	case key.Matches(msg, m.keys.Rename) && m.section == SectionMembers:
		m.openRename()
		return nil, true
	case key.Matches(msg, m.keys.Dismiss) && m.errorMsg != "":
		m.clearError()
		return nil, true
	}
	return nil, false
}

type updater interface {
	Update(msg tea.Msg) tea.Cmd
}

func (m *Model) updateFocused(msg tea.Msg) tea.Cmd {
	if target, ok := m.focused().(updater); ok {
		return target.Update(msg)
	}
	return nil
}
