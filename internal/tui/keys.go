package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's keybindings.
type KeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Hours   key.Binding
	Minutes key.Binding
	Switch  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "earlier"),
		),
		Next: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "later"),
		),
		Hours: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "hours"),
		),
		Minutes: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "minutes"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch column"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Switch, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next},
		{k.Hours, k.Minutes, k.Switch},
		{k.Help, k.Quit},
	}
}
