package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the screen-level key bindings. Overlay navigation
// (arrows, space, escape) is not bound here: those presses go through
// the canonical translation into the overlay input handler
type KeyMap struct {
	Quit     key.Binding
	Settings key.Binding
	Back     key.Binding
	Record   key.Binding
	Save     key.Binding
	Summon   key.Binding
}

// DefaultKeyMap is the built-in binding set
var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Record: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "record hotkey"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save hotkey"),
	),
	Summon: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "hang artwork"),
	),
}
