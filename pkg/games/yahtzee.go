package games

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

const (
	YahtzeeDice       = 5
	YahtzeeRolls      = 3
	YahtzeeCategories = 13

	YahtzeeActionRoll  = "roll"
	YahtzeeActionHold  = "hold"
	YahtzeeActionScore = "score"
)

// YahtzeeCategoryNames is indexed by the score category sent in moves.
var YahtzeeCategoryNames = [YahtzeeCategories]string{
	"Ones", "Twos", "Threes", "Fours", "Fives", "Sixes",
	"3 of a Kind", "4 of a Kind", "Full House",
	"Small Straight", "Large Straight", "Yahtzee", "Chance",
}

var yahtzeeFields = []string{"dice", "kept", "rolls_left", "current_player", "players", "game_over"}

// YahtzeeModel is a passthrough store. Scorecards are not settled
// server-side and end up in Extra.
type YahtzeeModel struct {
	Dice          [YahtzeeDice]int
	Kept          [YahtzeeDice]bool
	RollsLeft     int
	CurrentPlayer int
	Players       protocol.PlayersList
	GameOver      bool
	Extra         map[string]json.RawMessage
}

type YahtzeeMove struct {
	Action   string `json:"action"`
	DiceIdx  int    `json:"dice_idx,omitempty"`
	Category int    `json:"category,omitempty"`
}

type Yahtzee struct {
	base
	model YahtzeeModel
}

func NewYahtzee(sender MoveSender, logger *zap.Logger) *Yahtzee {
	game := &Yahtzee{}
	game.init(protocol.GameYahtzee, sender, logger)
	game.model = newYahtzeeModel()
	return game
}

func newYahtzeeModel() YahtzeeModel {
	return YahtzeeModel{
		RollsLeft: YahtzeeRolls,
	}
}

func (g *Yahtzee) ApplySnapshot(payload json.RawMessage) {
	fields := parseSnapshot(payload, g.logger)
	if fields == nil {
		return
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	mergeField(fields, "dice", &g.model.Dice, g.logger)
	mergeField(fields, "kept", &g.model.Kept, g.logger)
	mergeField(fields, "rolls_left", &g.model.RollsLeft, g.logger)
	mergeField(fields, "current_player", &g.model.CurrentPlayer, g.logger)
	mergeField(fields, "players", &g.model.Players, g.logger)
	mergeField(fields, "game_over", &g.model.GameOver, g.logger)

	for name, raw := range unknownFields(fields, yahtzeeFields...) {
		if g.model.Extra == nil {
			g.model.Extra = make(map[string]json.RawMessage)
		}
		g.model.Extra[name] = raw
	}
}

func (g *Yahtzee) SetRoster(players protocol.PlayersList) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model.Players = players.Clone()
}

func (g *Yahtzee) IsMyTurn(self protocol.PlayerID) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return isTurnOf(g.model.Players, g.model.CurrentPlayer, 0, self)
}

func (g *Yahtzee) ProposeMove(self protocol.PlayerID, move any) error {
	var intent YahtzeeMove
	switch m := move.(type) {
	case YahtzeeMove:
		intent = m
	case *YahtzeeMove:
		intent = *m
	default:
		return errors.Wrapf(ErrUnexpectedMove, "%T", move)
	}

	err := g.checkMove(self, intent)
	if err != nil {
		g.logger.Debug("move refused", zap.String("action", intent.Action), zap.Error(err))
		return err
	}

	return g.send(intent)
}

func (g *Yahtzee) checkMove(self protocol.PlayerID, move YahtzeeMove) error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if g.model.GameOver {
		return ErrGameOver
	}
	if !isTurnOf(g.model.Players, g.model.CurrentPlayer, 0, self) {
		return ErrNotYourTurn
	}

	switch move.Action {
	case YahtzeeActionRoll:
		if g.model.RollsLeft <= 0 {
			return errors.Wrap(ErrIllegalMove, "no rolls left")
		}
	case YahtzeeActionHold:
		if move.DiceIdx < 0 || move.DiceIdx >= YahtzeeDice {
			return errors.Wrapf(ErrIllegalMove, "dice %d out of range", move.DiceIdx)
		}
	case YahtzeeActionScore:
		if move.Category < 0 || move.Category >= YahtzeeCategories {
			return errors.Wrapf(ErrIllegalMove, "category %d out of range", move.Category)
		}
	default:
		return errors.Wrapf(ErrIllegalMove, "unknown action %q", move.Action)
	}
	return nil
}

func (g *Yahtzee) Reset() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model = newYahtzeeModel()
}

func (g *Yahtzee) Model() any {
	return g.Snapshot()
}

func (g *Yahtzee) Snapshot() YahtzeeModel {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	model := g.model
	model.Players = g.model.Players.Clone()
	model.Extra = cloneExtra(g.model.Extra)
	return model
}

func (m YahtzeeModel) CurrentPlayerName() string {
	player, ok := turnOwner(m.Players, m.CurrentPlayer, 0)
	if !ok {
		return ""
	}
	return player.DisplayName()
}

func (m YahtzeeModel) IsTurnOf(self protocol.PlayerID) bool {
	return isTurnOf(m.Players, m.CurrentPlayer, 0, self)
}
