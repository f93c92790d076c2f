package games

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

type constructor func(sender MoveSender, logger *zap.Logger) Reducer

var registry = map[protocol.GameKind]constructor{
	protocol.GameConnectFour: func(s MoveSender, l *zap.Logger) Reducer { return NewConnectFour(s, l) },
	protocol.GameMemory:      func(s MoveSender, l *zap.Logger) Reducer { return NewMemory(s, l) },
	protocol.GameSantorini:   func(s MoveSender, l *zap.Logger) Reducer { return NewSantorini(s, l) },
	protocol.GameYahtzee:     func(s MoveSender, l *zap.Logger) Reducer { return NewYahtzee(s, l) },
}

// Kinds lists supported games in menu order.
func Kinds() []protocol.GameKind {
	return []protocol.GameKind{
		protocol.GameConnectFour,
		protocol.GameMemory,
		protocol.GameSantorini,
		protocol.GameYahtzee,
	}
}

func Supported(kind protocol.GameKind) bool {
	_, ok := registry[kind]
	return ok
}

func New(kind protocol.GameKind, sender MoveSender, logger *zap.Logger) (Reducer, error) {
	create, ok := registry[kind]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGameKind, "%q", kind)
	}
	return create(sender, logger), nil
}
