package games

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

var (
	ErrUnknownGameKind = errors.New("unknown game kind")
	ErrNotYourTurn     = errors.New("not your turn")
	ErrIllegalMove     = errors.New("illegal move")
	ErrGameOver        = errors.New("game is over")
	ErrUnexpectedMove  = errors.New("unexpected move type")
)

// Reducer keeps the local mirror of one game, built from server snapshots.
// It never decides outcomes, it only surfaces what the server declared.
type Reducer interface {
	Kind() protocol.GameKind

	// ApplySnapshot merges the fields present in payload. Absent, null or
	// malformed fields leave the current value untouched.
	ApplySnapshot(payload json.RawMessage)

	// SetRoster seeds the players used for turn checks until a snapshot
	// carries its own players.
	SetRoster(players protocol.PlayersList)

	IsMyTurn(self protocol.PlayerID) bool

	// ProposeMove refuses moves that are locally implausible and forwards
	// the rest verbatim. The server remains the judge.
	ProposeMove(self protocol.PlayerID, move any) error

	Reset()

	// Model returns a copy safe to read while snapshots keep arriving.
	Model() any
}

type base struct {
	kind   protocol.GameKind
	logger *zap.Logger
	sender MoveSender
	mutex  sync.RWMutex
}

func (b *base) init(kind protocol.GameKind, sender MoveSender, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	b.kind = kind
	b.logger = logger.Named(string(kind))
	b.sender = sender
}

func (b *base) Kind() protocol.GameKind {
	return b.kind
}

func (b *base) send(move any) error {
	if b.sender == nil {
		return errors.New("no move sender")
	}
	b.logger.Debug("proposing move", zap.Any("move", move))
	err := b.sender.SendGameMove(move)
	if err != nil {
		return errors.Wrap(err, "failed to send move")
	}
	return nil
}

// turnOwner resolves the player whose turn it is. offset is the index of the
// first player in the variant's numbering. Out of range means no one's turn.
func turnOwner(players protocol.PlayersList, current int, offset int) (protocol.Player, bool) {
	index := current - offset
	if index < 0 || index >= len(players) {
		return protocol.Player{}, false
	}
	return players[index], true
}

func isTurnOf(players protocol.PlayersList, current int, offset int, self protocol.PlayerID) bool {
	if self == "" {
		return false
	}
	owner, ok := turnOwner(players, current, offset)
	return ok && owner.ID == self
}

func containsIndex(set []int, index int) bool {
	return slices.Contains(set, index)
}
