package session

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/games"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

var (
	ErrNotInRoom    = errors.New("not in a room")
	ErrNotHost      = errors.New("only the host can start the game")
	ErrNoActiveGame = errors.New("no active game")
	ErrGameEnded    = errors.New("game ended by the server")
)

// Session tracks room membership and the active screen. It changes only
// in response to server messages or explicit user intents.
type Session struct {
	logger     *zap.Logger
	connection Connection
	events     *EventManager

	mutex         sync.Mutex
	avatar        protocol.AvatarKind
	screen        Screen
	room          *protocol.RoomInfo
	roster        protocol.PlayersList
	isHost        bool
	playerNumber  int
	reducer       games.Reducer
	pendingKind   protocol.GameKind
	createdRoomID protocol.RoomID
	profiles      map[protocol.PlayerID]protocol.Player
	lastError     error
}

func NewSession(opts []Option) *Session {
	session := &Session{
		events:   NewEventManager(),
		screen:   ScreenHome,
		profiles: make(map[protocol.PlayerID]protocol.Player),
	}

	for _, opt := range opts {
		opt(session)
	}

	if session.logger == nil {
		session.logger = zap.NewNop()
	}
	session.logger = session.logger.Named("session")

	if session.connection == nil {
		session.logger.Error("connection is required")
		return nil
	}

	return session
}

// Initialize binds the session handlers. Handlers registered for the
// same types afterwards replace them.
func (s *Session) Initialize() {
	handlers := map[protocol.MessageType]connection.Handler{
		protocol.MessageTypeRoomCreated:  s.handleRoomCreated,
		protocol.MessageTypeRoomList:     s.handleRoomList,
		protocol.MessageTypePlayerJoined: s.handlePlayerJoined,
		protocol.MessageTypePlayerLeft:   s.handlePlayerLeft,
		protocol.MessageTypePlayerList:   s.handlePlayerList,
		protocol.MessageTypePlayerUpdate: s.handlePlayerUpdate,
		protocol.MessageTypeStartGame:    s.handleStartGame,
		protocol.MessageTypeGameState:    s.discardGameState,
		protocol.MessageTypeGameEnded:    s.handleGameEnded,
		protocol.MessageTypeError:        s.handleError,
	}
	for messageType, handler := range handlers {
		s.connection.RegisterHandler(messageType, handler)
	}
}

func (s *Session) Stop() {
	s.events.Close()
}

func (s *Session) Subscribe() *Subscription {
	return s.events.Subscribe()
}

func RoomName(avatar protocol.AvatarKind, kind protocol.GameKind) string {
	return fmt.Sprintf("%s's %s Room", avatar.Name(), kind.Title())
}

// SelectGame asks the server for a new room of the given kind.
// The session joins it as soon as the server confirms the creation.
func (s *Session) SelectGame(kind protocol.GameKind) error {
	if !games.Supported(kind) {
		return errors.Wrapf(games.ErrUnknownGameKind, "%q", kind)
	}

	s.mutex.Lock()
	s.pendingKind = kind
	name := RoomName(s.avatar, kind)
	s.mutex.Unlock()

	s.logger.Info("creating room", zap.String("kind", string(kind)), zap.String("name", name))
	err := s.connection.CreateRoom(kind, name)
	if err != nil {
		return errors.Wrap(err, "failed to create room")
	}
	return nil
}

func (s *Session) JoinRoom(roomID protocol.RoomID) error {
	s.logger.Info("joining room", zap.String("roomID", roomID.String()))
	err := s.connection.JoinRoom(roomID)
	if err != nil {
		return errors.Wrap(err, "failed to join room")
	}
	return nil
}

// SetAvatar remembers the avatar and announces it when online.
func (s *Session) SetAvatar(avatar protocol.AvatarKind) error {
	s.mutex.Lock()
	s.avatar = avatar
	s.mutex.Unlock()
	s.events.Send(Event{Tag: EventStateChanged})

	if !s.connection.IsConnected() {
		return nil
	}
	err := s.connection.SetAvatar(avatar)
	if err != nil {
		return errors.Wrap(err, "failed to set avatar")
	}
	return nil
}

func (s *Session) StartGame() error {
	s.mutex.Lock()
	inRoom := s.room != nil
	isHost := s.isHost
	s.mutex.Unlock()

	if !inRoom {
		return ErrNotInRoom
	}
	if !isHost {
		return ErrNotHost
	}

	err := s.connection.StartGame()
	if err != nil {
		return errors.Wrap(err, "failed to start game")
	}
	return nil
}

// SendGameMove forwards a raw move payload without local checks.
func (s *Session) SendGameMove(move any) error {
	s.mutex.Lock()
	active := s.screen == ScreenGame
	s.mutex.Unlock()

	if !active {
		return ErrNoActiveGame
	}
	return s.connection.SendGameMove(move)
}

// ProposeMove runs the active game's local checks before sending.
func (s *Session) ProposeMove(move any) error {
	s.mutex.Lock()
	reducer := s.reducer
	s.mutex.Unlock()

	if reducer == nil {
		return ErrNoActiveGame
	}
	return reducer.ProposeMove(s.connection.PlayerID(), move)
}

// ReturnToHome leaves the current room. Failing to notify the server
// does not block the local transition.
func (s *Session) ReturnToHome() {
	s.mutex.Lock()
	inRoom := s.room != nil
	changed := s.leaveLocked()
	s.mutex.Unlock()

	if inRoom && s.connection.IsConnected() {
		err := s.connection.LeaveRoom()
		if err != nil {
			s.logger.Warn("failed to leave room", zap.Error(err))
		}
	}

	if changed {
		s.afterLeave()
	}
}

// leaveLocked clears the room and reports whether the screen changed.
func (s *Session) leaveLocked() bool {
	wasGame := s.screen == ScreenGame
	changed := s.screen != ScreenHome

	if s.reducer != nil {
		s.reducer.Reset()
	}
	s.reducer = nil
	s.room = nil
	s.roster = nil
	s.isHost = false
	s.playerNumber = 0
	s.createdRoomID = ""
	s.profiles = make(map[protocol.PlayerID]protocol.Player)
	s.screen = ScreenHome

	if wasGame {
		s.connection.RegisterHandler(protocol.MessageTypeGameState, s.discardGameState)
	}
	return changed
}

func (s *Session) afterLeave() {
	s.logger.Info("returned home")
	s.events.Send(Event{Tag: EventScreenChanged, Data: ScreenHome})
}

func (s *Session) Screen() Screen {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.screen
}

func (s *Session) IsHost() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.isHost
}

func (s *Session) Rooms() []protocol.RoomInfo {
	return s.connection.Rooms()
}

func (s *Session) Reducer() games.Reducer {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.reducer
}

func (s *Session) Snapshot() Snapshot {
	selfID := s.connection.PlayerID()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	snapshot := Snapshot{
		Screen:       s.screen,
		SelfID:       selfID,
		Avatar:       s.avatar,
		Roster:       s.roster.Clone(),
		IsHost:       s.isHost,
		PlayerNumber: s.playerNumber,
		Profiles:     make(map[protocol.PlayerID]protocol.Player, len(s.profiles)),
		LastError:    s.lastError,
	}
	if s.room != nil {
		room := *s.room
		snapshot.Room = &room
	}
	for id, profile := range s.profiles {
		snapshot.Profiles[id] = profile
	}
	if s.reducer != nil {
		snapshot.GameKind = s.reducer.Kind()
		snapshot.Game = s.reducer.Model()
	}
	return snapshot
}

func (s *Session) recomputeHostLocked(selfID protocol.PlayerID) {
	host, ok := s.roster.Host()
	s.isHost = ok && selfID != "" && host.ID == selfID
}

func (s *Session) setLastError(err error) {
	s.mutex.Lock()
	s.lastError = err
	s.mutex.Unlock()
}
