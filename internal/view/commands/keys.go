package commands

import (
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Quit        key.Binding
	Home        key.Binding
	CommandMode key.Binding
	Select      key.Binding

	// Home screen
	ConnectFour key.Binding
	Memory      key.Binding
	Santorini   key.Binding
	Yahtzee     key.Binding
	Avatar      key.Binding
	Reconnect   key.Binding

	// Lobby
	Start key.Binding

	// Game
	Roll   key.Binding
	Hold   key.Binding
	Worker key.Binding
}

var DefaultKeyMap = KeyMap{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Home: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "home"),
	),
	CommandMode: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "command mode"),
	),
	Select: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	ConnectFour: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "connect four"),
	),
	Memory: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "memory"),
	),
	Santorini: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "santorini"),
	),
	Yahtzee: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "yahtzee"),
	),
	Avatar: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "avatar"),
	),
	Reconnect: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "reconnect"),
	),
	Start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	Roll: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "roll"),
	),
	Hold: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "hold"),
	),
	Worker: key.NewBinding(
		key.WithKeys("w"),
		key.WithHelp("w", "worker"),
	),
}
