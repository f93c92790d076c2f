package messages

import (
	"github.com/six78/gameroom-cli/internal/view/states"
	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/protocol"
	"github.com/six78/gameroom-cli/pkg/session"
)

type FatalErrorMessage struct {
	Err error
}

type AppStateFinishedMessage struct {
	State states.AppState
}

type AppStateMessage struct {
	State states.AppState
}

type ErrorMessage struct {
	Err error
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Err: err}
}

type ConnectionStatus struct {
	Status connection.Status
}

type SessionEvent struct {
	Event session.Event
}

// SessionState carries a fresh read-only copy of the session for components.
type SessionState struct {
	Snapshot session.Snapshot
	Rooms    []protocol.RoomInfo
}

type CommandModeChange struct {
	CommandMode bool
}
