package states

type AppState int

const (
	Initializing AppState = iota
	Connecting
	Playing
)

func (s AppState) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Connecting:
		return "connecting"
	case Playing:
		return "playing"
	}
	return "unknown"
}
