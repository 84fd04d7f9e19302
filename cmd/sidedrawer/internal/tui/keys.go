package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Side      key.Binding
	Front     key.Binding
	Toggle    key.Binding
	Pan       key.Binding
	Direction key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Side: key.NewBinding(
		key.WithKeys("s", "right"),
		key.WithHelp("s", "show side"),
	),
	Front: key.NewBinding(
		key.WithKeys("f", "left", "esc"),
		key.WithHelp("f", "show front"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space", "toggle"),
	),
	Pan: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "toggle drag"),
	),
	Direction: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "flip direction"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Side, k.Front, k.Toggle},
		{k.Pan, k.Direction},
		{k.Help, k.Quit},
	}
}
