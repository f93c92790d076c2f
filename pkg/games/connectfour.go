package games

import (
	"encoding/json"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

const (
	ConnectFourRows    = 6
	ConnectFourColumns = 7
)

type Cell int

const (
	CellEmpty Cell = iota
	CellPlayer1
	CellPlayer2
)

type ConnectFourBoard [ConnectFourRows][ConnectFourColumns]Cell

// ConnectFourModel numbers players from 1: CurrentPlayer 1 is Players[0].
// Winner is 0 until the server declares one.
type ConnectFourModel struct {
	Board         ConnectFourBoard
	Players       protocol.PlayersList
	CurrentPlayer int
	GameOver      bool
	Winner        int
}

type ConnectFourMove struct {
	Column int `json:"column"`
}

type ConnectFour struct {
	base
	model ConnectFourModel
}

func NewConnectFour(sender MoveSender, logger *zap.Logger) *ConnectFour {
	game := &ConnectFour{}
	game.init(protocol.GameConnectFour, sender, logger)
	game.model = newConnectFourModel()
	return game
}

func newConnectFourModel() ConnectFourModel {
	return ConnectFourModel{
		CurrentPlayer: 1,
	}
}

func (g *ConnectFour) ApplySnapshot(payload json.RawMessage) {
	fields := parseSnapshot(payload, g.logger)
	if fields == nil {
		return
	}

	g.mutex.Lock()
	defer g.mutex.Unlock()

	var board [][]Cell
	if mergeValidField(fields, "board", &board, validConnectFourBoard, g.logger) {
		for row := range board {
			copy(g.model.Board[row][:], board[row])
		}
	}
	mergeField(fields, "players", &g.model.Players, g.logger)
	mergeField(fields, "current_player", &g.model.CurrentPlayer, g.logger)
	mergeField(fields, "game_over", &g.model.GameOver, g.logger)
	mergeField(fields, "winner", &g.model.Winner, g.logger)
}

func validConnectFourBoard(board [][]Cell) bool {
	if len(board) != ConnectFourRows {
		return false
	}
	for _, row := range board {
		if len(row) != ConnectFourColumns {
			return false
		}
	}
	return true
}

func (g *ConnectFour) SetRoster(players protocol.PlayersList) {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model.Players = players.Clone()
}

func (g *ConnectFour) IsMyTurn(self protocol.PlayerID) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.isMyTurnLocked(self)
}

func (g *ConnectFour) isMyTurnLocked(self protocol.PlayerID) bool {
	return isTurnOf(g.model.Players, g.model.CurrentPlayer, 1, self)
}

func (g *ConnectFour) ProposeMove(self protocol.PlayerID, move any) error {
	var column int
	switch m := move.(type) {
	case ConnectFourMove:
		column = m.Column
	case *ConnectFourMove:
		column = m.Column
	default:
		return errors.Wrapf(ErrUnexpectedMove, "%T", move)
	}

	err := g.checkMove(self, column)
	if err != nil {
		g.logger.Debug("move refused", zap.Int("column", column), zap.Error(err))
		return err
	}

	return g.send(ConnectFourMove{Column: column})
}

func (g *ConnectFour) checkMove(self protocol.PlayerID, column int) error {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	if g.model.GameOver {
		return ErrGameOver
	}
	if !g.isMyTurnLocked(self) {
		return ErrNotYourTurn
	}
	if column < 0 || column >= ConnectFourColumns {
		return errors.Wrapf(ErrIllegalMove, "column %d out of range", column)
	}
	if g.model.Board[0][column] != CellEmpty {
		return errors.Wrapf(ErrIllegalMove, "column %d is full", column)
	}
	return nil
}

func (g *ConnectFour) Reset() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.model = newConnectFourModel()
}

func (g *ConnectFour) Model() any {
	return g.Snapshot()
}

func (g *ConnectFour) Snapshot() ConnectFourModel {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	model := g.model
	model.Players = g.model.Players.Clone()
	return model
}

// CurrentPlayerName is empty when the turn index points outside the roster.
func (m ConnectFourModel) CurrentPlayerName() string {
	player, ok := turnOwner(m.Players, m.CurrentPlayer, 1)
	if !ok {
		return ""
	}
	return player.DisplayName()
}

func (m ConnectFourModel) IsTurnOf(self protocol.PlayerID) bool {
	return isTurnOf(m.Players, m.CurrentPlayer, 1, self)
}
