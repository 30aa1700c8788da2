package picker

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings the picker reacts to. Several keys can share one
// binding, e.g. enter and space both toggle.
type KeyMap struct {
	Interrupt key.Binding
	Quit      key.Binding
	Toggle    key.Binding
	Up        key.Binding
	Down      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit: key.NewBinding(
			key.WithKeys("q", "alt+q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "toggle"),
		),
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "tab"),
			key.WithHelp("↓/tab", "down"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
