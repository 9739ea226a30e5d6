package tui

import "github.com/charmbracelet/bubbles/key"

// Other key presses belong to the chord being captured.
type keyMap struct {
	Cancel key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
