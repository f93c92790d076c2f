package shortcutsview

import (
	"fmt"

	bubblekey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/view/commands"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/pkg/protocol"
	"github.com/six78/gameroom-cli/pkg/session"
)

const (
	smallSeparator = " "
	bigSeparator   = "  "
)

var (
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type Model struct {
	screen      session.Screen
	isHost      bool
	gameKind    protocol.GameKind
	commandMode bool
}

func New() Model {
	return Model{
		screen: session.ScreenHome,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode
	case messages.SessionState:
		m.screen = msg.Snapshot.Screen
		m.isHost = msg.Snapshot.IsHost
		m.gameKind = msg.Snapshot.GameKind
	}
	return m
}

func (m Model) View() string {
	keys := commands.DefaultKeyMap

	var rows []string

	switch m.screen {
	case session.ScreenHome:
		rows = append(rows,
			text("New room: ")+keyHelp(keys.ConnectFour)+bigSeparator+
				keyHelp(keys.Memory)+bigSeparator+
				keyHelp(keys.Santorini)+bigSeparator+
				keyHelp(keys.Yahtzee),
			text("Use ")+arrows()+text(" to select a room and press ")+key(keys.Select)+text(" to join"),
			keyHelp(keys.Avatar)+bigSeparator+keyHelp(keys.Reconnect),
		)

	case session.ScreenLobby:
		if m.isHost {
			rows = append(rows, key(keys.Start)+text(" Start the game"))
		} else {
			rows = append(rows, "") // Keep the same height for host and guests
		}

	case session.ScreenGame:
		rows = append(rows, text("Use ")+arrows()+text(" to move and press ")+key(keys.Select)+text(" to play"))
		switch m.gameKind {
		case protocol.GameYahtzee:
			rows = append(rows, keyHelp(keys.Roll)+bigSeparator+keyHelp(keys.Hold))
		case protocol.GameSantorini:
			rows = append(rows, key(keys.Worker)+text(" Switch worker"))
		}
	}

	{ // Last row
		var row string
		if m.screen != session.ScreenHome {
			row = key(keys.Home) + text(" Leave the room") + bigSeparator
		}
		row += key(keys.CommandMode)
		if m.commandMode {
			row += text(" Switch to shortcuts mode")
		} else {
			row += text(" Switch to commands mode")
		}
		row += bigSeparator + keyHelp(keys.Quit)
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func arrows() string {
	return keyStyle.Render("[arrows]")
}

func key(key bubblekey.Binding) string {
	s := fmt.Sprintf("[%s]", key.Help().Key)
	return keyStyle.Render(s)
}

func text(text string) string {
	return textStyle.Render(text)
}

func help(key bubblekey.Binding) string {
	return text(key.Help().Desc)
}

func keyHelp(k bubblekey.Binding) string {
	return key(k) + smallSeparator + help(k)
}
