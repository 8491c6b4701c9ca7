package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings of the preview screen
type KeyMap struct {
	// General
	Help key.Binding
	Quit key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	GotoTop  key.Binding
	GotoEnd  key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Selection & actions
	Toggle     key.Binding
	SelectAll  key.Binding
	SelectNone key.Binding
	Rename     key.Binding
	Rescan     key.Binding

	// Confirmation
	Yes key.Binding
	No  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		GotoTop:  key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		GotoEnd:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),

		Toggle:     key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "select all")),
		SelectNone: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "select none")),
		Rename:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "rename selected")),
		Rescan:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),

		Yes: key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
		No:  key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "cancel")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.SelectAll, k.SelectNone, k.Rename, k.Rescan, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.GotoTop, k.GotoEnd, k.PageUp, k.PageDown},
		{k.Toggle, k.SelectAll, k.SelectNone},
		{k.Rename, k.Rescan, k.Help, k.Quit},
	}
}

// confirmKeys is the help shown while a confirmation is pending
type confirmKeys struct{ KeyMap }

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
