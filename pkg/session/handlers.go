package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/games"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

func (s *Session) messageLogger(message protocol.Message) *zap.Logger {
	return s.logger.With(
		zap.String("type", string(message.Type)),
		zap.String("playerID", string(message.PlayerID)),
		zap.String("roomID", message.RoomID.String()),
	)
}

func (s *Session) handleRoomCreated(message protocol.Message) {
	logger := s.messageLogger(message)

	roomID := message.RoomID
	if roomID.Empty() {
		var data protocol.JoinRoomData
		if err := message.DecodeData(&data); err == nil {
			roomID = data.RoomID
		}
	}
	if roomID.Empty() {
		logger.Warn("room created without id")
		return
	}

	s.mutex.Lock()
	if message.GameType != "" {
		s.pendingKind = message.GameType
	}
	s.createdRoomID = roomID
	s.mutex.Unlock()

	logger.Info("room created, joining")
	err := s.connection.JoinRoom(roomID)
	if err != nil {
		logger.Error("failed to join created room", zap.Error(err))
		s.setLastError(err)
		s.events.Send(Event{Tag: EventStateChanged})
	}
}

func (s *Session) handleRoomList(message protocol.Message) {
	var data protocol.RoomListData
	if err := message.DecodeData(&data); err != nil {
		s.messageLogger(message).Warn("failed to decode room list", zap.Error(err))
		return
	}

	s.mutex.Lock()
	if s.room != nil {
		for _, info := range data.Rooms {
			if info.ID != s.room.ID {
				continue
			}
			started := s.room.Started
			kind := s.room.GameType
			*s.room = info
			s.room.Started = s.room.Started || started
			if s.room.GameType == "" {
				s.room.GameType = kind
			}
			break
		}
	}
	s.mutex.Unlock()

	s.events.Send(Event{Tag: EventStateChanged})
}

func (s *Session) handlePlayerJoined(message protocol.Message) {
	logger := s.messageLogger(message)
	selfID := s.connection.PlayerID()

	s.mutex.Lock()

	if selfID == "" || message.PlayerID != selfID {
		if s.room != nil && (message.RoomID.Empty() || message.RoomID == s.room.ID) {
			s.room.Players++
		}
		s.mutex.Unlock()
		logger.Debug("player joined")
		s.events.Send(Event{Tag: EventStateChanged})
		return
	}

	if s.screen != ScreenHome {
		s.mutex.Unlock()
		logger.Debug("already in a room, ignoring self join")
		return
	}

	room := s.roomInfoLocked(message.RoomID, message.GameType)
	s.room = &room
	s.roster = nil
	if room.ID == s.createdRoomID {
		// The creator is the first player until the server says otherwise
		s.roster = protocol.PlayersList{{ID: selfID, Avatar: s.avatar}}
	}
	s.recomputeHostLocked(selfID)
	s.screen = ScreenLobby
	s.lastError = nil
	s.mutex.Unlock()

	logger.Info("joined room",
		zap.String("name", room.Name),
		zap.String("kind", string(room.GameType)))
	s.events.Send(Event{Tag: EventScreenChanged, Data: ScreenLobby})
}

func (s *Session) roomInfoLocked(roomID protocol.RoomID, kind protocol.GameKind) protocol.RoomInfo {
	if kind == "" {
		kind = s.pendingKind
	}

	for _, info := range s.connection.Rooms() {
		if info.ID == roomID {
			if info.GameType == "" {
				info.GameType = kind
			}
			return info
		}
	}

	return protocol.RoomInfo{
		ID:         roomID,
		Name:       fmt.Sprintf("Room %s", roomID),
		GameType:   kind,
		Players:    1,
		MaxPlayers: protocol.DefaultMaxPlayers(kind),
	}
}

func (s *Session) handlePlayerLeft(message protocol.Message) {
	logger := s.messageLogger(message)
	selfID := s.connection.PlayerID()

	s.mutex.Lock()
	if s.room == nil {
		s.mutex.Unlock()
		return
	}

	if selfID != "" && message.PlayerID == selfID {
		changed := s.leaveLocked()
		s.mutex.Unlock()
		if changed {
			s.afterLeave()
		}
		return
	}

	if s.room.Players > 0 {
		s.room.Players--
	}
	s.mutex.Unlock()

	logger.Debug("player left")
	s.events.Send(Event{Tag: EventStateChanged})
}

func (s *Session) handlePlayerList(message protocol.Message) {
	logger := s.messageLogger(message)

	var data protocol.PlayerListData
	if err := message.DecodeData(&data); err != nil {
		logger.Warn("failed to decode player list", zap.Error(err))
		return
	}

	selfID := s.connection.PlayerID()

	s.mutex.Lock()
	if s.screen == ScreenHome {
		s.mutex.Unlock()
		logger.Debug("ignoring player list outside a room")
		return
	}
	s.replaceRosterLocked(data.Players, selfID)
	s.mutex.Unlock()

	logger.Debug("roster updated", zap.Int("players", len(data.Players)))
	s.events.Send(Event{Tag: EventStateChanged})
}

func (s *Session) replaceRosterLocked(players protocol.PlayersList, selfID protocol.PlayerID) {
	s.roster = players.Clone()
	s.recomputeHostLocked(selfID)
	if s.room != nil {
		s.room.Players = len(players)
	}
	if s.reducer != nil {
		s.reducer.SetRoster(s.roster)
	}
}

func (s *Session) handlePlayerUpdate(message protocol.Message) {
	logger := s.messageLogger(message)

	var data protocol.PlayerUpdateData
	if err := message.DecodeData(&data); err != nil {
		logger.Warn("failed to decode player update", zap.Error(err))
		return
	}
	if data.PlayerID == "" {
		data.PlayerID = message.PlayerID
	}
	if data.PlayerID == "" {
		logger.Warn("player update without player id")
		return
	}

	s.mutex.Lock()
	s.profiles[data.PlayerID] = protocol.Player{
		ID:     data.PlayerID,
		Name:   data.Name,
		Avatar: data.Avatar,
	}
	s.mutex.Unlock()

	s.events.Send(Event{Tag: EventStateChanged})
}

func (s *Session) handleStartGame(message protocol.Message) {
	logger := s.messageLogger(message)
	selfID := s.connection.PlayerID()

	s.mutex.Lock()
	if s.screen == ScreenGame {
		s.mutex.Unlock()
		logger.Debug("game already started")
		return
	}
	if s.room == nil {
		s.mutex.Unlock()
		logger.Warn("game started outside a room")
		return
	}

	kind := s.room.GameType
	if message.GameType != "" {
		kind = message.GameType
	}

	reducer, err := games.New(kind, s.connection, s.logger)
	if err != nil {
		s.mutex.Unlock()
		logger.Error("cannot start game", zap.Error(err))
		return
	}

	var data protocol.StartGameData
	if len(message.Data) > 0 {
		if err := message.DecodeData(&data); err != nil {
			logger.Warn("failed to decode start game data", zap.Error(err))
		}
	}
	if len(data.Players) > 0 {
		s.replaceRosterLocked(data.Players, selfID)
	}

	reducer.Reset()
	reducer.SetRoster(s.roster)
	s.reducer = reducer
	s.playerNumber = data.PlayerNumber
	s.room.GameType = kind
	s.room.Started = true
	s.screen = ScreenGame
	s.connection.RegisterHandler(protocol.MessageTypeGameState, func(message protocol.Message) {
		s.applyGameState(reducer, message)
	})
	s.mutex.Unlock()

	logger.Info("game started", zap.String("kind", string(kind)))
	s.events.Send(Event{Tag: EventScreenChanged, Data: ScreenGame})
}

func (s *Session) applyGameState(reducer games.Reducer, message protocol.Message) {
	s.mutex.Lock()
	active := s.reducer == reducer
	s.mutex.Unlock()

	if !active {
		s.discardGameState(message)
		return
	}
	if len(message.Data) == 0 {
		s.messageLogger(message).Warn("game state without data")
		return
	}

	reducer.ApplySnapshot(message.Data)
	s.events.Send(Event{Tag: EventStateChanged})
}

func (s *Session) discardGameState(message protocol.Message) {
	s.messageLogger(message).Debug("discarding game state, no active game")
}

func (s *Session) handleGameEnded(message protocol.Message) {
	logger := s.messageLogger(message)

	s.mutex.Lock()
	if s.room == nil {
		s.mutex.Unlock()
		return
	}
	if !message.RoomID.Empty() && message.RoomID != s.room.ID {
		s.mutex.Unlock()
		logger.Debug("game ended in another room")
		return
	}
	changed := s.leaveLocked()
	s.lastError = ErrGameEnded
	s.mutex.Unlock()

	logger.Info("game ended by the server")
	if changed {
		s.afterLeave()
	}
}

func (s *Session) handleError(message protocol.Message) {
	var data protocol.ErrorData
	err := message.DecodeData(&data)
	if err != nil || data.Error == "" {
		data.Error = "unknown error"
	}

	serverErr := &protocol.ServerError{Message: data.Error}
	s.setLastError(serverErr)
	s.messageLogger(message).Error("server rejected request", zap.Error(serverErr))
	s.events.Send(Event{Tag: EventServerError, Data: serverErr})
}
