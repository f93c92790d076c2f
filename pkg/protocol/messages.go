package protocol

import (
	"encoding/json"
	"time"
)

type MessageType string

// Inbound
const (
	MessageTypeConnected    MessageType = "connected"
	MessageTypeRoomCreated  MessageType = "room_created"
	MessageTypePlayerJoined MessageType = "player_joined"
	MessageTypePlayerLeft   MessageType = "player_left"
	MessageTypePlayerList   MessageType = "player_list"
	MessageTypePlayerUpdate MessageType = "player_update"
	MessageTypeRoomList     MessageType = "room_list"
	MessageTypeGameState    MessageType = "game_state"
	MessageTypeGameEnded    MessageType = "game_ended"
	MessageTypeError        MessageType = "error"
)

// Outbound
const (
	MessageTypeCreateRoom MessageType = "create_room"
	MessageTypeJoinRoom   MessageType = "join_room"
	MessageTypeLeaveRoom  MessageType = "leave_room"
	MessageTypeGameMove   MessageType = "game_move"
	MessageTypeSetAvatar  MessageType = "set_avatar"
)

// MessageTypeStartGame is both a request (host starts the game)
// and a notification (server started the game).
const MessageTypeStartGame MessageType = "start_game"

// Message is the envelope of every frame exchanged with the server.
type Message struct {
	Type      MessageType     `json:"type"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
	PlayerID  PlayerID        `json:"player_id,omitempty"`
	RoomID    RoomID          `json:"room_id,omitempty"`
	GameType  GameKind        `json:"game_type,omitempty"`
}

type CreateRoomData struct {
	GameType GameKind `json:"game_type"`
	RoomName string   `json:"room_name"`
}

type JoinRoomData struct {
	RoomID RoomID `json:"room_id"`
}

type SetAvatarData struct {
	Avatar AvatarKind `json:"avatar"`
}

type ErrorData struct {
	Error string `json:"error"`
}

type RoomListData struct {
	Rooms []RoomInfo `json:"rooms"`
}

type PlayerListData struct {
	Players PlayersList `json:"players"`
}

type PlayerUpdateData struct {
	PlayerID PlayerID   `json:"player_id"`
	Avatar   AvatarKind `json:"avatar"`
	Name     string     `json:"name"`
}

type StartGameData struct {
	PlayerNumber int         `json:"player_number"`
	TotalPlayers int         `json:"total_players"`
	Players      PlayersList `json:"players"`
}

// ServerError is an explicit rejection sent by the server in an `error` envelope.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return "server error: " + e.Message
}
