package session

import (
	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

//go:generate mockgen -source=connection.go -destination=mock/connection.go

// Connection is the part of connection.Manager the session drives.
type Connection interface {
	PlayerID() protocol.PlayerID
	Rooms() []protocol.RoomInfo
	IsConnected() bool
	RegisterHandler(messageType protocol.MessageType, handler connection.Handler)

	CreateRoom(kind protocol.GameKind, roomName string) error
	JoinRoom(roomID protocol.RoomID) error
	LeaveRoom() error
	StartGame() error
	SetAvatar(avatar protocol.AvatarKind) error
	SendGameMove(move any) error
}
