package view

import (
	"reflect"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/six78/gameroom-cli/internal/app"
	"github.com/six78/gameroom-cli/internal/testcommon"
	mocktransport "github.com/six78/gameroom-cli/internal/transport/mock"
	"github.com/six78/gameroom-cli/internal/view/messages"
	"github.com/six78/gameroom-cli/internal/view/states"
	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/protocol"
	"github.com/six78/gameroom-cli/pkg/session"
)

func TestModel(t *testing.T) {
	suite.Run(t, new(ModelSuite))
}

type ModelSuite struct {
	testcommon.Suite
	app    *app.App
	dialer *mocktransport.MockDialer
}

func (s *ModelSuite) SetupSuite() {
	s.Suite.SetupSuite()
	lipgloss.SetColorProfile(termenv.Ascii)
}

func (s *ModelSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.dialer = mocktransport.NewMockDialer(ctrl)

	s.app = app.NewApp([]app.Option{
		app.WithDialer(s.dialer),
		app.WithLogger(s.Logger),
		app.WithServerURL("ws://gameroom.test/ws"),
		app.WithAvatar(7),
		app.WithConnectionOptions(connection.WithClock(clockwork.NewFakeClock())),
	})
	s.Require().NotNil(s.app)
	s.Require().NoError(s.app.Initialize())
}

func (s *ModelSuite) TearDownTest() {
	s.app.Stop()
	s.app = nil
}

func (s *ModelSuite) playingModel() model {
	m := initialModel(s.app)
	m.state = states.Playing
	return m
}

func runes(text string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
}

func (s *ModelSuite) firstMessage(cmd tea.Cmd) tea.Msg {
	s.Require().NotNil(cmd)
	batch := s.SplitBatch(cmd)
	s.Require().NotEmpty(batch)
	return batch[0]()
}

func (s *ModelSuite) TestInitialModel() {
	m := initialModel(s.app)

	s.Require().Equal(s.app, m.app)
	s.Require().Equal(states.Initializing, m.state)
	s.Require().Nil(m.fatalError)
	s.Require().Equal(session.ScreenHome, m.snapshot.Screen)
	s.Require().False(m.commandMode)
	s.Require().False(m.input.Focused())
	s.Require().False(m.sessionEventHandler.Active())
	s.Require().False(m.connectionEventHandler.Active())
	s.Require().NotNil(m.Init())
}

func (s *ModelSuite) TestUpdateEmpty() {
	m := tea.Model(initialModel(s.app))

	m2, cmd := m.Update(nil)
	s.Require().Nil(cmd)
	s.Require().NotNil(m2.(model))

	eq := reflect.DeepEqual(m, m2)
	s.Require().True(eq)
}

func (s *ModelSuite) TestUpdateFatalErrorMessage() {
	m := initialModel(s.app)

	err := gofakeit.Error()
	msg := messages.FatalErrorMessage{Err: err}

	m2, cmd := m.Update(msg)
	s.Require().Nil(cmd)
	s.Require().Equal(err, m2.(model).fatalError)
	s.Require().Contains(m2.View(), "fatal error: "+err.Error())
}

func (s *ModelSuite) TestInitializingFinished() {
	m := initialModel(s.app)

	m2, cmd := m.Update(messages.AppStateFinishedMessage{State: states.Initializing})
	s.Require().Equal(states.Connecting, m2.(model).state)
	s.Require().True(m2.(model).sessionEventHandler.Active())
	s.Require().True(m2.(model).connectionEventHandler.Active())

	batch := s.SplitBatch(cmd)
	s.Require().GreaterOrEqual(len(batch), 4)

	sessionEvent, ok := batch[0]().(messages.SessionEvent)
	s.Require().True(ok)
	s.Require().Equal(session.EventStateChanged, sessionEvent.Event.Tag)

	status, ok := batch[1]().(messages.ConnectionStatus)
	s.Require().True(ok)
	s.Require().Equal(connection.StateDisconnected, status.Status.State)

	s.Require().Equal(messages.AppStateMessage{State: states.Connecting}, batch[2]())
}

func (s *ModelSuite) TestConnectingFinished() {
	m := initialModel(s.app)
	m.state = states.Connecting

	m2, _ := m.Update(messages.AppStateFinishedMessage{State: states.Connecting})
	s.Require().Equal(states.Playing, m2.(model).state)
}

func (s *ModelSuite) TestSessionEventRefreshesState() {
	m := s.playingModel()

	_, cmd := m.Update(messages.SessionEvent{Event: session.Event{Tag: session.EventStateChanged}})
	state, ok := s.firstMessage(cmd).(messages.SessionState)
	s.Require().True(ok)
	s.Require().Equal(session.ScreenHome, state.Snapshot.Screen)
	s.Require().Equal(protocol.AvatarKind(7), state.Snapshot.Avatar)
	s.Require().Empty(state.Rooms)
}

func (s *ModelSuite) TestServerErrorShown() {
	m := s.playingModel()

	serverErr := &protocol.ServerError{Message: "Room not found"}
	_, cmd := m.Update(messages.SessionEvent{Event: session.Event{
		Tag:  session.EventServerError,
		Data: serverErr,
	}})

	batch := s.SplitBatch(cmd)
	s.Require().GreaterOrEqual(len(batch), 2)
	s.Require().Equal(messages.NewErrorMessage(serverErr), batch[1]())

	m2, _ := m.Update(batch[1]())
	s.Require().Contains(m2.View(), "Room not found")
}

func (s *ModelSuite) TestSessionStateSwitchesScreen() {
	m := s.playingModel()

	state := messages.SessionState{
		Snapshot: session.Snapshot{
			Screen: session.ScreenLobby,
			SelfID: "p1",
			IsHost: true,
			Room: &protocol.RoomInfo{
				ID:         "42",
				Name:       "Teddy's YAHTZEE Room",
				GameType:   protocol.GameYahtzee,
				Players:    1,
				MaxPlayers: 20,
			},
			Roster: protocol.PlayersList{{ID: "p1", Avatar: 1}},
		},
	}

	m2, _ := m.Update(state)
	view := m2.View()
	s.Require().Contains(view, "Room: Teddy's YAHTZEE Room")
	s.Require().Contains(view, "Start the game")
	s.Require().NotContains(view, "Rooms:")
}

func (s *ModelSuite) TestOfflineSelectGame() {
	m := s.playingModel()

	_, cmd := m.Update(runes("1"))
	msg, ok := s.firstMessage(cmd).(messages.ErrorMessage)
	s.Require().True(ok)
	s.Require().ErrorIs(msg.Err, connection.ErrNotConnected)
}

func (s *ModelSuite) TestKeysIgnoredWhileConnecting() {
	m := initialModel(s.app)
	m.state = states.Connecting

	_, cmd := m.Update(runes("1"))
	s.Require().Nil(cmd)
}

func (s *ModelSuite) TestEscapeAtHomeIgnored() {
	m := s.playingModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s.Require().Nil(cmd)
}

func (s *ModelSuite) TestAvatarKey() {
	m := s.playingModel()
	m.snapshot = s.app.Session.Snapshot()

	_, cmd := m.Update(runes("a"))
	s.Require().Equal(messages.NewErrorMessage(nil), s.firstMessage(cmd))
	s.Require().Equal(protocol.AvatarKind(8), s.app.Session.Snapshot().Avatar)
}

func (s *ModelSuite) commandModel() model {
	m := s.playingModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	s.Require().Equal(messages.CommandModeChange{CommandMode: true}, s.firstMessage(cmd))

	m2, _ := m.Update(messages.CommandModeChange{CommandMode: true})
	m = m2.(model)
	s.Require().True(m.commandMode)
	s.Require().True(m.input.Focused())
	return m
}

func (s *ModelSuite) runCommand(input string) tea.Msg {
	m := s.commandModel()
	m.input.SetValue(input)

	m2, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	updated := m2.(model)
	s.Require().Empty(updated.input.Value())
	return s.firstMessage(cmd)
}

func (s *ModelSuite) TestCommandModeTypesShortcuts() {
	m := s.commandModel()

	m2, _ := m.Update(runes("1"))
	updated := m2.(model)
	s.Require().Equal("1", updated.input.Value())
}

func (s *ModelSuite) TestUnknownCommand() {
	msg, ok := s.runCommand("dance").(messages.ErrorMessage)
	s.Require().True(ok)
	s.Require().EqualError(msg.Err, "unknown command: 'dance'")
}

func (s *ModelSuite) TestCreateUnknownGame() {
	msg, ok := s.runCommand("create chess").(messages.ErrorMessage)
	s.Require().True(ok)
	s.Require().EqualError(msg.Err,
		"unknown game: 'chess', available games: connect_four, memory, santorini, yahtzee")
}

func (s *ModelSuite) TestCreateOffline() {
	msg, ok := s.runCommand("create memory").(messages.ErrorMessage)
	s.Require().True(ok)
	s.Require().ErrorIs(msg.Err, connection.ErrNotConnected)
}

func (s *ModelSuite) TestMoveRequiresJSON() {
	msg, ok := s.runCommand("move {column").(messages.ErrorMessage)
	s.Require().True(ok)
	s.Require().EqualError(msg.Err, "move is not valid JSON")
}

func (s *ModelSuite) TestAvatarCommand() {
	msg, ok := s.runCommand("avatar 42").(messages.ErrorMessage)
	s.Require().True(ok)
	s.Require().EqualError(msg.Err, "unknown avatar: 42, expected 0..14")

	msg, ok = s.runCommand("avatar 5").(messages.ErrorMessage)
	s.Require().True(ok)
	s.Require().NoError(msg.Err)
	s.Require().Equal(protocol.AvatarKind(5), s.app.Session.Snapshot().Avatar)
}
