package connection

import "github.com/six78/gameroom-cli/pkg/protocol"

type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	}
	return "unknown"
}

type Status struct {
	State             State
	PlayerID          protocol.PlayerID
	ReconnectAttempts int
	MaxAttempts       int
	ReconnectPending  bool
	LastError         error
}

type StatusSubscription chan Status
