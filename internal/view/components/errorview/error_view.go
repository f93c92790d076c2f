package errorview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/internal/view/messages"
)

var style = lipgloss.NewStyle().Foreground(config.ErrorColor)

// Model shows the last error until a successful command clears it.
type Model struct {
	err error
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ErrorMessage:
		m.err = msg.Err
	}
	return m
}

func (m Model) View() string {
	if m.err == nil {
		return ""
	}
	return style.Render("Error: " + m.err.Error())
}

func (m Model) Err() error {
	return m.err
}
