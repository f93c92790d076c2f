package protocol

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalMessage(t *testing.T) {
	playerID := PlayerID(gofakeit.UUID())
	payload := []byte(`{"type":"connected","player_id":"` + string(playerID) + `","timestamp":"2024-03-01T10:00:00Z"}`)

	message, err := UnmarshalMessage(payload)
	require.NoError(t, err)
	require.Equal(t, MessageTypeConnected, message.Type)
	require.Equal(t, playerID, message.PlayerID)
	require.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), message.Timestamp.UTC())
	require.Empty(t, message.Data)
}

func TestUnmarshalMalformedMessage(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{"not json", "hello"},
		{"truncated", `{"type":"room_list"`},
		{"missing type", `{"data":{}}`},
		{"empty type", `{"type":""}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := UnmarshalMessage([]byte(tc.payload))
			require.ErrorIs(t, err, ErrMalformedMessage)
		})
	}
}

func TestNewMessage(t *testing.T) {
	roomName := gofakeit.Sentence(3)
	message, err := NewMessage(MessageTypeCreateRoom, CreateRoomData{
		GameType: GameMemory,
		RoomName: roomName,
	})
	require.NoError(t, err)
	require.Equal(t, MessageTypeCreateRoom, message.Type)

	var data map[string]string
	err = json.Unmarshal(message.Data, &data)
	require.NoError(t, err)
	require.Equal(t, "memory", data["game_type"])
	require.Equal(t, roomName, data["room_name"])

	message, err = NewMessage(MessageTypeLeaveRoom, nil)
	require.NoError(t, err)
	require.Nil(t, message.Data)

	payload, err := json.Marshal(message)
	require.NoError(t, err)
	require.NotContains(t, string(payload), `"data"`)
}

func TestDecodeData(t *testing.T) {
	message, err := UnmarshalMessage([]byte(`{"type":"error","data":{"error":"room is full"}}`))
	require.NoError(t, err)

	var data ErrorData
	err = message.DecodeData(&data)
	require.NoError(t, err)
	require.Equal(t, "room is full", data.Error)

	message, err = UnmarshalMessage([]byte(`{"type":"error"}`))
	require.NoError(t, err)
	err = message.DecodeData(&data)
	require.ErrorIs(t, err, ErrMalformedMessage)

	message, err = UnmarshalMessage([]byte(`{"type":"room_list","data":{"rooms":"oops"}}`))
	require.NoError(t, err)
	var rooms RoomListData
	err = message.DecodeData(&rooms)
	require.ErrorIs(t, err, ErrMalformedMessage)
}

func TestPlayersList(t *testing.T) {
	host := Player{ID: PlayerID(gofakeit.UUID()), Avatar: 3}
	guest := Player{ID: PlayerID(gofakeit.UUID()), Name: gofakeit.Username()}
	list := PlayersList{host, guest}

	require.Equal(t, 0, list.Index(host.ID))
	require.Equal(t, 1, list.Index(guest.ID))
	require.Equal(t, -1, list.Index(PlayerID(gofakeit.UUID())))
	require.Equal(t, -1, list.Index(""))

	player, ok := list.Get(guest.ID)
	require.True(t, ok)
	require.Equal(t, guest, player)

	first, ok := list.Host()
	require.True(t, ok)
	require.Equal(t, host, first)

	_, ok = PlayersList{}.Host()
	require.False(t, ok)

	clone := list.Clone()
	clone[0].Name = "changed"
	require.Empty(t, list[0].Name)
}

func TestPlayerDisplayName(t *testing.T) {
	require.Equal(t, "Zach Rabbit", Player{Avatar: 3}.DisplayName())
	require.Equal(t, "Bob", Player{Name: "Bob", Avatar: 3}.DisplayName())
}

func TestAvatarKind(t *testing.T) {
	require.Equal(t, "Human", AvatarKind(0).Name())
	require.Equal(t, "Hen-ry", AvatarKind(14).Name())
	require.Equal(t, "Human", AvatarKind(99).Name())
	require.Equal(t, AvatarKind(0), AvatarKind(14).Next())
	require.False(t, AvatarKind(-1).Valid())
}

func TestGameKind(t *testing.T) {
	require.Equal(t, "CONNECT FOUR", GameConnectFour.Title())
	require.Equal(t, "MEMORY", GameMemory.Title())
	require.Equal(t, 20, DefaultMaxPlayers(GameYahtzee))
	require.Equal(t, 20, DefaultMaxPlayers(GameMemory))
	require.Equal(t, 2, DefaultMaxPlayers(GameSantorini))
	require.Equal(t, 2, DefaultMaxPlayers(GameConnectFour))
}
