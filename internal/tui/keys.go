package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the board.
type KeyMap struct {
	Quit     key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	Refresh  key.Binding
	Inc      key.Binding
	Dec      key.Binding
	Help     key.Binding

	// Food board actions
	Cook     key.Binding
	Fast     key.Binding
	Delivery key.Binding
	Fah      key.Binding

	// Training log actions
	Series   key.Binding
	Unseries key.Binding
}

// DefaultKeyMap returns the default key map for the application.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("k/up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("j/down", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "x"),
			key.WithHelp("space", "toggle"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y", "claim pleno"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "decline"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Inc: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "increase"),
		),
		Dec: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "decrease"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Cook: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "cook +1"),
		),
		Fast: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fast +2"),
		),
		Delivery: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delivery -2"),
		),
		Fah: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "fah -1"),
		),
		Series: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "series +1"),
		),
		Unseries: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "series -1"),
		),
	}
}
