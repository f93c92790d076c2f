package session

import (
	"github.com/six78/gameroom-cli/pkg/protocol"
)

type Screen int

const (
	ScreenHome Screen = iota
	ScreenLobby
	ScreenGame
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenLobby:
		return "lobby"
	case ScreenGame:
		return "game"
	}
	return "unknown"
}

// Snapshot is a copy of the session state for rendering.
// Mutating it has no effect on the session.
type Snapshot struct {
	Screen       Screen
	SelfID       protocol.PlayerID
	Avatar       protocol.AvatarKind
	Room         *protocol.RoomInfo
	Roster       protocol.PlayersList
	IsHost       bool
	PlayerNumber int
	Profiles     map[protocol.PlayerID]protocol.Player
	GameKind     protocol.GameKind
	Game         any
	LastError    error
}

func (s Snapshot) InRoom() bool {
	return s.Room != nil
}

// PlayerName prefers the latest profile update over the roster entry.
func (s Snapshot) PlayerName(player protocol.Player) string {
	if profile, ok := s.Profiles[player.ID]; ok {
		return profile.DisplayName()
	}
	return player.DisplayName()
}
