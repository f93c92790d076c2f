package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/internal/view/states"
	"github.com/six78/gameroom-cli/pkg/session"
)

var (
	foregroundShadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
)

func (m model) renderAppState() string {
	switch m.state {
	case states.Initializing:
		return m.spinner.View() + " Starting ..."
	case states.Connecting:
		return m.spinner.View() + " Connecting to " + m.app.URL() + " ..."
	case states.Playing:
		return m.renderSession()
	}

	return "unknown app state"
}

func (m model) renderSession() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		m.statusView.View(),
		m.renderPlayer(),
		"",
		m.renderScreen(),
		m.renderActionInput(),
		m.errorView.View())
}

func (m model) renderPlayer() string {
	player := "  Avatar: " + m.snapshot.Avatar.Name()
	if m.snapshot.SelfID != "" {
		player += foregroundShadeStyle.Render(fmt.Sprintf(" (player %s)", m.snapshot.SelfID))
	}
	return player
}

func (m model) renderScreen() string {
	switch m.snapshot.Screen {
	case session.ScreenHome:
		return m.roomsView.View()
	case session.ScreenLobby:
		return m.lobbyView.View() + "\n"
	case session.ScreenGame:
		return m.renderGame()
	}
	return fmt.Sprintf("unknown screen: %s", m.snapshot.Screen)
}

func (m model) renderGame() string {
	title := m.snapshot.GameKind.Title()
	if m.snapshot.Room != nil {
		title = m.snapshot.Room.Name
	}
	return lipgloss.JoinVertical(lipgloss.Top,
		title,
		"",
		m.boardView.View(),
		"",
	)
}

func (m model) renderActionInput() string {
	if m.commandMode {
		return m.input.View()
	}
	return m.shortcutsView.View()
}

func renderLogPath() string {
	path := strings.Replace(config.LogFilePath, " ", "%20", -1)
	return fmt.Sprintf("Log: file:///%s", path)
}
