package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/internal/app"
	"github.com/six78/gameroom-cli/internal/config"
)

func NewProgram(a *app.App) *tea.Program {
	return tea.NewProgram(initialModel(a))
}

func Run(p *tea.Program) int {
	if _, err := p.Run(); err != nil {
		config.Logger.Error("error running program", zap.Error(err))
		return 1
	}
	return 0
}
