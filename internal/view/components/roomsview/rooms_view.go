package roomsview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/internal/view/components/cursor"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

const (
	cursorSymbol = ">"
)

var (
	highlightStyle = lipgloss.NewStyle().Foreground(config.UserColor)
	shadeStyle     = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
)

// Model lists the rooms announced by the server on the home screen.
type Model struct {
	rooms       []protocol.RoomInfo
	commandMode bool
	focused     bool

	cursor  cursor.Model
	spinner spinner.Model
}

func New() Model {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return Model{
		cursor:  cursor.New(1, 0, false),
		spinner: s,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.SessionState:
		m.rooms = msg.Rooms
		m.cursor.SetSize(1, len(m.rooms))
		m.updateCursorFocus()

	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode
		m.updateCursorFocus()
	}

	var spinnerCommand tea.Cmd
	m.spinner, spinnerCommand = m.spinner.Update(msg)
	m.cursor = m.cursor.Update(msg)

	return m, spinnerCommand
}

func (m Model) View() string {
	items := make([]string, 0, len(m.rooms))

	for i, room := range m.rooms {
		var item string
		var style lipgloss.Style

		if m.cursor.Match(i) {
			item += cursorSymbol
			style = highlightStyle
		} else {
			item += " "
		}

		status := "open"
		if room.Started {
			status = "playing"
		}
		item += fmt.Sprintf(" %-28s %-14s %2d/%-2d %s",
			room.Name, room.GameType.Title(), room.Players, room.MaxPlayers, status)
		items = append(items, style.Render(item))
	}

	if len(items) == 0 {
		items = append(items, shadeStyle.Render("- No rooms yet, create one"))
	}

	fullBlock := lipgloss.JoinVertical(lipgloss.Top, items...)
	return fmt.Sprintf("Rooms:\n%s\n", fullBlock)
}

func (m *Model) updateCursorFocus() {
	m.cursor.SetFocus(!m.commandMode && m.focused && len(m.rooms) > 0)
}

func (m *Model) Focus() {
	m.focused = true
	m.updateCursorFocus()
}

func (m *Model) Blur() {
	m.focused = false
	m.updateCursorFocus()
}

// Selected is the room under the cursor, if any.
func (m *Model) Selected() (protocol.RoomInfo, bool) {
	if !m.cursor.Focused() {
		return protocol.RoomInfo{}, false
	}
	index := m.cursor.Position()
	if index < 0 || index >= len(m.rooms) {
		return protocol.RoomInfo{}, false
	}
	return m.rooms[index], true
}
