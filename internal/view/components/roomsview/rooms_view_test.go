package roomsview

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/suite"

	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

func TestRoomsView(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	suite.Suite
}

func (s *Suite) SetupSuite() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func testRooms() []protocol.RoomInfo {
	return []protocol.RoomInfo{
		{
			ID:         "r1",
			Name:       "Teddy's MEMORY Room",
			GameType:   protocol.GameMemory,
			Players:    3,
			MaxPlayers: 20,
		},
		{
			ID:         "r2",
			Name:       "Kaycat's CONNECT FOUR Room",
			GameType:   protocol.GameConnectFour,
			Players:    2,
			MaxPlayers: 2,
			Started:    true,
		},
	}
}

func lines(view string) []string {
	result := strings.Split(view, "\n")
	for i := range result {
		result[i] = strings.TrimRight(result[i], " ")
	}
	return result
}

func (s *Suite) TestInit() {
	model := New()
	s.Require().False(model.commandMode)
	s.Require().False(model.focused)
	s.Require().Empty(model.rooms)
	s.Require().Equal(spinner.MiniDot, model.spinner.Spinner)
	s.Require().NotNil(model.Init())
}

func (s *Suite) TestEmptyView() {
	model := New()
	s.Require().Equal([]string{
		"Rooms:",
		"- No rooms yet, create one",
		"",
	}, lines(model.View()))
}

func (s *Suite) TestView() {
	model := New()
	model.Focus()
	model, _ = model.Update(messages.SessionState{Rooms: testRooms()})
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})

	s.Require().Equal([]string{
		"Rooms:",
		"  Teddy's MEMORY Room          MEMORY          3/20 open",
		"> Kaycat's CONNECT FOUR Room   CONNECT FOUR    2/2  playing",
		"",
	}, lines(model.View()))
}

func (s *Suite) TestSelected() {
	model := New()

	_, ok := model.Selected()
	s.Require().False(ok)

	model, _ = model.Update(messages.SessionState{Rooms: testRooms()})
	_, ok = model.Selected()
	s.Require().False(ok, "not focused")

	model.Focus()
	room, ok := model.Selected()
	s.Require().True(ok)
	s.Require().Equal(protocol.RoomID("r1"), room.ID)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyDown})
	room, ok = model.Selected()
	s.Require().True(ok)
	s.Require().Equal(protocol.RoomID("r2"), room.ID)

	model, _ = model.Update(messages.CommandModeChange{CommandMode: true})
	_, ok = model.Selected()
	s.Require().False(ok)

	model, _ = model.Update(messages.CommandModeChange{CommandMode: false})
	model, _ = model.Update(messages.SessionState{Rooms: testRooms()[:1]})
	room, ok = model.Selected()
	s.Require().True(ok)
	s.Require().Equal(protocol.RoomID("r1"), room.ID)

	model.Blur()
	_, ok = model.Selected()
	s.Require().False(ok)
}
