package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the launcher key bindings
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Complete   key.Binding
	NextAction key.Binding
	PrevAction key.Binding
	Run        key.Binding
	Reindex    key.Binding
	ShowIndex  key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "next"),
		),
		Complete: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "complete"),
		),
		NextAction: key.NewBinding(
			key.WithKeys("ctrl+right", "ctrl+f"),
			key.WithHelp("ctrl+→", "next action"),
		),
		PrevAction: key.NewBinding(
			key.WithKeys("ctrl+left", "shift+tab"),
			key.WithHelp("ctrl+←", "previous action"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "run"),
		),
		Reindex: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reindex"),
		),
		ShowIndex: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "list executables"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Complete, k.Run, k.NextAction, k.Reindex, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Complete},
		{k.Run, k.NextAction, k.PrevAction},
		{k.Reindex, k.ShowIndex, k.Help, k.Quit},
	}
}
