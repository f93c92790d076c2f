package lobbyview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/pkg/session"
)

const hostSymbol = "*"

var (
	selfStyle  = lipgloss.NewStyle().Foreground(config.UserColor)
	shadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
)

// Model shows the room and its roster while waiting for the game to start.
type Model struct {
	snapshot session.Snapshot
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.SessionState:
		m.snapshot = msg.Snapshot
	}
	return m
}

func (m Model) View() string {
	room := m.snapshot.Room
	if room == nil {
		return ""
	}

	items := []string{
		fmt.Sprintf("Room: %s", room.Name),
		shadeStyle.Render(fmt.Sprintf("%s, id %s", room.GameType.Title(), room.ID)),
		"",
		fmt.Sprintf("Players %d/%d:", room.Players, room.MaxPlayers),
	}

	if len(m.snapshot.Roster) == 0 {
		items = append(items, shadeStyle.Render("- Waiting for the player list"))
	}

	for i, player := range m.snapshot.Roster {
		marker := " "
		if i == 0 {
			marker = hostSymbol
		}
		name := m.snapshot.PlayerName(player)
		item := fmt.Sprintf(" %s %s", marker, name)
		if player.ID == m.snapshot.SelfID {
			item = selfStyle.Render(item + " (you)")
		}
		items = append(items, item)
	}

	items = append(items, "")
	if m.snapshot.IsHost {
		items = append(items, "You are the host, start the game when everyone is here")
	} else {
		items = append(items, shadeStyle.Render("Waiting for the host to start the game"))
	}

	return lipgloss.JoinVertical(lipgloss.Top, items...)
}
