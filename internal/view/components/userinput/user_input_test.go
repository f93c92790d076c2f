package userinput

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/six78/gameroom-cli/internal/view/messages"
)

func TestCommandModeFocus(t *testing.T) {
	model := New(false)
	require.False(t, model.Focused())
	require.NotNil(t, model.Init())

	model, _ = model.Update(messages.CommandModeChange{CommandMode: true})
	require.True(t, model.Focused())

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("join 42")})
	require.Equal(t, "join 42", model.Value())

	model.Reset()
	require.Empty(t, model.Value())

	model, _ = model.Update(messages.CommandModeChange{CommandMode: false})
	require.False(t, model.Focused())
}
