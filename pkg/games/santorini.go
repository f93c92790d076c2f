package games

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

const (
	SantoriniBoardSize = 5

	SantoriniPhasePlaceWorker  = "PLACE_WORKER"
	SantoriniPhaseSelectWorker = "SELECT_WORKER"
	SantoriniPhaseMove         = "MOVE"
	SantoriniPhaseBuild        = "BUILD"
)

var santoriniFields = []string{"board", "players", "current_player", "phase", "game_over"}

// SantoriniModel is a passthrough store. The board layout is not settled
// server-side, so it is kept raw along with any field not modelled here.
type SantoriniModel struct {
	Board         json.RawMessage
	Players       protocol.PlayersList
	CurrentPlayer int
	Phase         string
	GameOver      bool
	Extra         map[string]json.RawMessage
}

type SantoriniMove struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Phase  string `json:"phase"`
	Worker int    `json:"worker"`
}

type Santorini struct {
	base
	model SantoriniModel
}

func NewSantorini(sender MoveSender, logger *zap.Logger) *Santorini {
	game := &Santorini{}
	game.init(protocol.GameSantorini, sender, logger)
	game.model = newSantoriniModel()
	return game
}

func newSantoriniModel() SantoriniModel {
	return SantoriniModel{
		Phase: SantoriniPhasePlaceWorker,
	}
}

func (g *Santorini) ApplySnapshot(payload json.RawMessage) {
	fields := parseSnapshot(payload, g.logger)
	if fields == nil {
		return
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	mergeField(fields, "board", &g.model.Board, g.logger)
	mergeField(fields, "players", &g.model.Players, g.logger)
	mergeField(fields, "current_player", &g.model.CurrentPlayer, g.logger)
	mergeValidField(fields, "phase", &g.model.Phase, notEmpty, g.logger)
	mergeField(fields, "game_over", &g.model.GameOver, g.logger)

	for name, raw := range unknownFields(fields, santoriniFields...) {
		if g.model.Extra == nil {
			g.model.Extra = make(map[string]json.RawMessage)
		}
		g.model.Extra[name] = raw
	}
}

func notEmpty(value string) bool {
	return value != ""
}

func (g *Santorini) SetRoster(players protocol.PlayersList) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model.Players = players.Clone()
}

func (g *Santorini) IsMyTurn(self protocol.PlayerID) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return isTurnOf(g.model.Players, g.model.CurrentPlayer, 0, self)
}

func (g *Santorini) ProposeMove(self protocol.PlayerID, move any) error {
	var target SantoriniMove
	switch m := move.(type) {
	case SantoriniMove:
		target = m
	case *SantoriniMove:
		target = *m
	default:
		return errors.Wrapf(ErrUnexpectedMove, "%T", move)
	}

	err := g.checkMove(self, target)
	if err != nil {
		g.logger.Debug("move refused",
			zap.Int("x", target.X),
			zap.Int("y", target.Y),
			zap.Error(err))
		return err
	}

	return g.send(target)
}

func (g *Santorini) checkMove(self protocol.PlayerID, move SantoriniMove) error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if g.model.GameOver {
		return ErrGameOver
	}
	if !isTurnOf(g.model.Players, g.model.CurrentPlayer, 0, self) {
		return ErrNotYourTurn
	}
	if move.X < 0 || move.X >= SantoriniBoardSize || move.Y < 0 || move.Y >= SantoriniBoardSize {
		return errors.Wrapf(ErrIllegalMove, "cell (%d,%d) is off the board", move.X, move.Y)
	}
	if move.Worker < 0 || move.Worker > 1 {
		return errors.Wrapf(ErrIllegalMove, "unknown worker %d", move.Worker)
	}
	return nil
}

func (g *Santorini) Reset() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model = newSantoriniModel()
}

func (g *Santorini) Model() any {
	return g.Snapshot()
}

func (g *Santorini) Snapshot() SantoriniModel {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	model := g.model
	model.Board = cloneRaw(g.model.Board)
	model.Players = g.model.Players.Clone()
	model.Extra = cloneExtra(g.model.Extra)
	return model
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

func cloneExtra(extra map[string]json.RawMessage) map[string]json.RawMessage {
	if extra == nil {
		return nil
	}
	clone := make(map[string]json.RawMessage, len(extra))
	for name, raw := range extra {
		clone[name] = cloneRaw(raw)
	}
	return clone
}

func (m SantoriniModel) CurrentPlayerName() string {
	player, ok := turnOwner(m.Players, m.CurrentPlayer, 0)
	if !ok {
		return ""
	}
	return player.DisplayName()
}

// Levels decodes the board as rows of building levels. The board layout is
// not settled, so any other shape reports false.
func (m SantoriniModel) Levels() ([][]int, bool) {
	if len(m.Board) == 0 {
		return nil, false
	}
	var levels [][]int
	if err := json.Unmarshal(m.Board, &levels); err != nil {
		return nil, false
	}
	return levels, true
}

func (m SantoriniModel) IsTurnOf(self protocol.PlayerID) bool {
	return isTurnOf(m.Players, m.CurrentPlayer, 0, self)
}
