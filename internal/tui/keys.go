package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Commit      key.Binding
	Open        key.Binding
	CycleType   key.Binding
	CyclePicker key.Binding
	Reset       key.Binding
	Clear       key.Binding
	Cancel      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Commit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),
		Open:        key.NewBinding(key.WithKeys("ctrl+o", "alt+down"), key.WithHelp("ctrl+o", "open picker")),
		CycleType:   key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "type")),
		CyclePicker: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "picker")),
		Reset:       key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Clear:       key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close/quit")),
		Help:        key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Open, k.Cancel, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Commit, k.Open, k.Clear, k.Reset},
		{k.CycleType, k.CyclePicker, k.Help, k.Cancel, k.Quit},
	}
}
