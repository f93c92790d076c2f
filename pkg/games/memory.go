package games

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

const (
	MemoryCards   = 24
	MemoryColumns = 6
	MemoryRows    = 4

	MemoryActionFlip = "flip"
)

// MemoryModel numbers players from 0: CurrentPlayer 0 is Players[0].
type MemoryModel struct {
	Cards         []int
	Flipped       []int
	Matched       []int
	Players       protocol.PlayersList
	Scores        []int
	CurrentPlayer int
	GameOver      bool
}

type MemoryMove struct {
	Action    string `json:"action"`
	CardIndex int    `json:"card_index"`
}

func NewFlipMove(cardIndex int) MemoryMove {
	return MemoryMove{
		Action:    MemoryActionFlip,
		CardIndex: cardIndex,
	}
}

type Memory struct {
	base
	model MemoryModel
}

func NewMemory(sender MoveSender, logger *zap.Logger) *Memory {
	game := &Memory{}
	game.init(protocol.GameMemory, sender, logger)
	return game
}

func (g *Memory) ApplySnapshot(payload json.RawMessage) {
	fields := parseSnapshot(payload, g.logger)
	if fields == nil {
		return
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	mergeField(fields, "cards", &g.model.Cards, g.logger)
	mergeField(fields, "flipped", &g.model.Flipped, g.logger)
	mergeField(fields, "matched", &g.model.Matched, g.logger)
	mergeField(fields, "players", &g.model.Players, g.logger)
	mergeField(fields, "scores", &g.model.Scores, g.logger)
	mergeField(fields, "current_player", &g.model.CurrentPlayer, g.logger)
	mergeField(fields, "game_over", &g.model.GameOver, g.logger)
}

func (g *Memory) SetRoster(players protocol.PlayersList) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model.Players = players.Clone()
}

func (g *Memory) IsMyTurn(self protocol.PlayerID) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return isTurnOf(g.model.Players, g.model.CurrentPlayer, 0, self)
}

func (g *Memory) ProposeMove(self protocol.PlayerID, move any) error {
	var flip MemoryMove
	switch m := move.(type) {
	case MemoryMove:
		flip = m
	case *MemoryMove:
		flip = *m
	default:
		return errors.Wrapf(ErrUnexpectedMove, "%T", move)
	}

	err := g.checkMove(self, flip)
	if err != nil {
		g.logger.Debug("move refused", zap.Int("card", flip.CardIndex), zap.Error(err))
		return err
	}

	return g.send(flip)
}

func (g *Memory) checkMove(self protocol.PlayerID, move MemoryMove) error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if move.Action != MemoryActionFlip {
		return errors.Wrapf(ErrIllegalMove, "unknown action %q", move.Action)
	}
	if g.model.GameOver {
		return ErrGameOver
	}
	if !isTurnOf(g.model.Players, g.model.CurrentPlayer, 0, self) {
		return ErrNotYourTurn
	}

	cards := MemoryCards
	if len(g.model.Cards) > 0 {
		cards = len(g.model.Cards)
	}
	if move.CardIndex < 0 || move.CardIndex >= cards {
		return errors.Wrapf(ErrIllegalMove, "card %d out of range", move.CardIndex)
	}
	if containsIndex(g.model.Flipped, move.CardIndex) {
		return errors.Wrapf(ErrIllegalMove, "card %d is already flipped", move.CardIndex)
	}
	if containsIndex(g.model.Matched, move.CardIndex) {
		return errors.Wrapf(ErrIllegalMove, "card %d is already matched", move.CardIndex)
	}
	return nil
}

func (g *Memory) Reset() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model = MemoryModel{}
}

func (g *Memory) Model() any {
	return g.Snapshot()
}

func (g *Memory) Snapshot() MemoryModel {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return MemoryModel{
		Cards:         slices.Clone(g.model.Cards),
		Flipped:       slices.Clone(g.model.Flipped),
		Matched:       slices.Clone(g.model.Matched),
		Players:       g.model.Players.Clone(),
		Scores:        slices.Clone(g.model.Scores),
		CurrentPlayer: g.model.CurrentPlayer,
		GameOver:      g.model.GameOver,
	}
}

// Winner is the index of the unique top scorer once the server declared
// the game over. A tie has no winner.
func (m MemoryModel) Winner() (int, bool) {
	if !m.GameOver {
		return -1, false
	}
	return MemoryWinner(m.Scores)
}

func MemoryWinner(scores []int) (int, bool) {
	if len(scores) == 0 {
		return -1, false
	}

	winner := 0
	tie := false
	for i := 1; i < len(scores); i++ {
		switch {
		case scores[i] > scores[winner]:
			winner = i
			tie = false
		case scores[i] == scores[winner]:
			tie = true
		}
	}

	if tie {
		return -1, false
	}
	return winner, true
}

func (m MemoryModel) IsFlipped(index int) bool {
	return containsIndex(m.Flipped, index)
}

func (m MemoryModel) IsMatched(index int) bool {
	return containsIndex(m.Matched, index)
}

// CurrentPlayerName is empty when the turn index points outside the roster.
func (m MemoryModel) CurrentPlayerName() string {
	player, ok := turnOwner(m.Players, m.CurrentPlayer, 0)
	if !ok {
		return ""
	}
	return player.DisplayName()
}

func (m MemoryModel) IsTurnOf(self protocol.PlayerID) bool {
	return isTurnOf(m.Players, m.CurrentPlayer, 0, self)
}
