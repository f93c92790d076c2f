package protocol

import "strings"

type RoomID string

func (id RoomID) String() string {
	return string(id)
}

func (id RoomID) Empty() bool {
	return id == ""
}

type RoomInfo struct {
	ID         RoomID   `json:"id"`
	Name       string   `json:"name"`
	GameType   GameKind `json:"game_type"`
	Players    int      `json:"players"`
	MaxPlayers int      `json:"max_players"`
	Started    bool     `json:"started"`
}

type GameKind string

const (
	GameConnectFour GameKind = "connect_four"
	GameMemory      GameKind = "memory"
	GameSantorini   GameKind = "santorini"
	GameYahtzee     GameKind = "yahtzee"
)

// Title is the upper-cased kind with underscores as spaces.
func (k GameKind) Title() string {
	return strings.ToUpper(strings.ReplaceAll(string(k), "_", " "))
}

// DefaultMaxPlayers mirrors the server room capacity.
func DefaultMaxPlayers(kind GameKind) int {
	switch kind {
	case GameYahtzee, GameMemory:
		return 20
	default:
		return 2
	}
}
