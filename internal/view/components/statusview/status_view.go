package statusview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/pkg/connection"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
)

const marker = "●"

type Model struct {
	status connection.Status
	server string
}

func New(server string) Model {
	return Model{server: server}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ConnectionStatus:
		m.status = msg.Status
	}
	return m
}

func (m Model) View() string {
	var dot, text string

	switch m.status.State {
	case connection.StateConnected:
		dot = okStyle.Render(marker)
		text = fmt.Sprintf(" Connected to %s", m.server)
	case connection.StateConnecting:
		dot = warnStyle.Render(marker)
		text = fmt.Sprintf(" Connecting to %s", m.server)
		if m.status.ReconnectAttempts > 0 {
			text += fmt.Sprintf(" (attempt %d/%d)", m.status.ReconnectAttempts, m.status.MaxAttempts)
		}
	default:
		dot = dangerStyle.Render(marker)
		text = " Offline"
		if m.status.ReconnectPending {
			text += fmt.Sprintf(", reconnecting (attempt %d/%d)", m.status.ReconnectAttempts, m.status.MaxAttempts)
		} else if m.status.LastError != nil {
			text += fmt.Sprintf(": %s", m.status.LastError)
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, dot, text)
}

func (m Model) Status() connection.Status {
	return m.status
}
