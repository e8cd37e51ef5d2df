package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit          key.Binding
	Help          key.Binding
	NextFocus     key.Binding
	PrevFocus     key.Binding
	ToggleTheme   key.Binding
	ToggleSidebar key.Binding
	UserMenu      key.Binding
	Rename        key.Binding
	Dismiss       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "izhod")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "pomoč")),
		NextFocus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "naprej")),
		PrevFocus:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "nazaj")),
		ToggleTheme:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "tema")),
		ToggleSidebar: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "stranska vrstica")),
		UserMenu:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "uporabnik")),
		Rename:        key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "preimenuj skupino")),
		Dismiss:       key.NewBinding(key.WithKeys("esc", "x"), key.WithHelp("esc", "zapri")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.ToggleTheme, k.UserMenu, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.ToggleSidebar},
		{k.ToggleTheme, k.UserMenu, k.Rename},
		{k.Dismiss, k.Help, k.Quit},
	}
}
