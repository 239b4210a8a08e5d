package player

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle     key.Binding
	Forward    key.Binding
	Backward   key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Quit       key.Binding
}

// ShortHelp реализует help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Backward, k.Forward, k.VolumeUp, k.VolumeDown, k.Quit}
}

// FullHelp реализует help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Backward, k.Forward},
		{k.VolumeUp, k.VolumeDown, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("пробел", "пауза/воспроизведение"),
		),
		Forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "вперед"),
		),
		Backward: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "назад"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("up", "+"),
			key.WithHelp("↑", "громче"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("down", "-"),
			key.WithHelp("↓", "тише"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "выход"),
		),
	}
}
