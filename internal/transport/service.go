package transport

import "context"

//go:generate mockgen -source=service.go -destination=mock/service.go

// Close codes used by the game server. Any code other than
// CloseNormalClosure is treated as an abnormal closure.
const (
	CloseNormalClosure   = 1000
	CloseAbnormalClosure = 1006
)

type EventKind int

const (
	EventMessage EventKind = iota
	EventError
	EventClose
)

func (k EventKind) String() string {
	switch k {
	case EventMessage:
		return "message"
	case EventError:
		return "error"
	case EventClose:
		return "close"
	}
	return "unknown"
}

type Event struct {
	Kind    EventKind
	Payload []byte
	Err     error
	Code    int
	Reason  string
}

func (e Event) Normal() bool {
	return e.Kind == EventClose && e.Code == CloseNormalClosure
}

// Channel is a single bidirectional text connection.
// Events delivers inbound frames in arrival order and is closed after
// exactly one EventClose.
type Channel interface {
	Events() <-chan Event
	Send(payload []byte) error
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context, url string) (Channel, error)
}
