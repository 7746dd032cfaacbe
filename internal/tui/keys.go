package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevCategory key.Binding
	NextCategory key.Binding
	Up           key.Binding
	Down         key.Binding
	Select       key.Binding
	Clear        key.Binding
	Assistant    key.Binding
	Collapse     key.Binding
	Dark         key.Binding
	Team         key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PrevCategory: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
		NextCategory: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open item")),
		Clear:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "category page")),
		Assistant:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "assistant")),
		Collapse:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
		Dark:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark mode")),
		Team:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next team")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevCategory, k.NextCategory, k.Select, k.Assistant, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCategory, k.NextCategory, k.Up, k.Down, k.Select, k.Clear},
		{k.Assistant, k.Collapse, k.Dark, k.Team},
		{k.Help, k.Quit},
	}
}
