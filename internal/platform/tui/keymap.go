package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the pet session.
type KeyMap struct {
	Left         key.Binding
	Right        key.Binding
	Section      key.Binding
	Trigger      key.Binding
	ToggleSword  key.Binding
	ToggleShield key.Binding
	Quit         key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Section, k.Trigger, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Section, k.Trigger},
		{k.ToggleSword, k.ToggleShield, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "prev"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right/l", "next"),
		),
		Section: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "actions/shop"),
		),
		Trigger: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "do it"),
		),
		ToggleSword: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "sword"),
		),
		ToggleShield: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "shield"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
