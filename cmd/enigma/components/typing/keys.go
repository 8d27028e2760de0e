package typing

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Left          key.Binding
	Right         key.Binding
	Up            key.Binding
	Down          key.Binding
	NextRotor     key.Binding
	PrevRotor     key.Binding
	Reflector     key.Binding
	PrevReflector key.Binding
	Quit          key.Binding
}

var keys = keyMap{ // nolint: gochecknoglobals
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←/→", "select rotor"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑/↓", "turn rotor"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
	),
	NextRotor: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup/pgdn", "swap rotor"),
	),
	PrevRotor: key.NewBinding(
		key.WithKeys("pgdown"),
	),
	Reflector: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next reflector"),
	),
	PrevReflector: key.NewBinding(
		key.WithKeys("shift+tab"),
	),
	Quit: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.NextRotor, k.Reflector, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
