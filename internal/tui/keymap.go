package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap binds the key presses the watch dashboard responds to.
type KeyMap struct {
	Quit key.Binding
}

// DefaultKeyMap returns the dashboard's standard key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
