package connection

import (
	"github.com/pkg/errors"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

func (m *Manager) send(messageType protocol.MessageType, data any) error {
	message, err := protocol.NewMessage(messageType, data)
	if err != nil {
		return errors.Wrap(err, "failed to build message")
	}
	return m.Send(message)
}

func (m *Manager) CreateRoom(kind protocol.GameKind, roomName string) error {
	return m.send(protocol.MessageTypeCreateRoom, protocol.CreateRoomData{
		GameType: kind,
		RoomName: roomName,
	})
}

func (m *Manager) JoinRoom(roomID protocol.RoomID) error {
	return m.send(protocol.MessageTypeJoinRoom, protocol.JoinRoomData{
		RoomID: roomID,
	})
}

func (m *Manager) LeaveRoom() error {
	return m.send(protocol.MessageTypeLeaveRoom, nil)
}

func (m *Manager) StartGame() error {
	return m.send(protocol.MessageTypeStartGame, nil)
}

// SendGameMove wraps a game-specific move into a game_move envelope.
func (m *Manager) SendGameMove(move any) error {
	return m.send(protocol.MessageTypeGameMove, move)
}

func (m *Manager) SetAvatar(avatar protocol.AvatarKind) error {
	return m.send(protocol.MessageTypeSetAvatar, protocol.SetAvatarData{
		Avatar: avatar,
	})
}
