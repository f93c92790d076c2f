package games

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/six78/gameroom-cli/internal/testcommon"
	mockgames "github.com/six78/gameroom-cli/pkg/games/mock"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

func TestGames(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite
	sender *mockgames.MockMoveSender
	p1     protocol.Player
	p2     protocol.Player
}

func (s *Suite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.sender = mockgames.NewMockMoveSender(ctrl)
	s.p1 = protocol.Player{ID: protocol.PlayerID(gofakeit.UUID()), Avatar: 1}
	s.p2 = protocol.Player{ID: protocol.PlayerID(gofakeit.UUID()), Avatar: 2}
}

func (s *Suite) roster() protocol.PlayersList {
	return protocol.PlayersList{s.p1, s.p2}
}

func (s *Suite) newReducer(kind protocol.GameKind) Reducer {
	reducer, err := New(kind, s.sender, s.Logger)
	s.Require().NoError(err)
	s.Require().NotNil(reducer)
	s.Require().Equal(kind, reducer.Kind())
	return reducer
}

func (s *Suite) apply(reducer Reducer, format string, args ...any) {
	reducer.ApplySnapshot(json.RawMessage(fmt.Sprintf(format, args...)))
}

func (s *Suite) playersJSON() string {
	payload, err := json.Marshal(s.roster())
	s.Require().NoError(err)
	return string(payload)
}

func boardJSON(mutate func(board *ConnectFourBoard)) string {
	var board ConnectFourBoard
	if mutate != nil {
		mutate(&board)
	}
	rows := make([][]Cell, ConnectFourRows)
	for i := range board {
		rows[i] = board[i][:]
	}
	payload, _ := json.Marshal(rows)
	return string(payload)
}

func (s *Suite) TestRegistry() {
	for _, kind := range Kinds() {
		s.Require().True(Supported(kind))
		s.newReducer(kind)
	}

	reducer, err := New("unknown_kind", s.sender, s.Logger)
	s.Require().ErrorIs(err, ErrUnknownGameKind)
	s.Require().Nil(reducer)
	s.Require().False(Supported("unknown_kind"))
}

func (s *Suite) TestPartialSnapshotMerge() {
	game := NewConnectFour(s.sender, s.Logger)

	s.apply(game, `{"current_player":2}`)
	s.apply(game, `{"game_over":true}`)

	model := game.Snapshot()
	s.Require().Equal(2, model.CurrentPlayer)
	s.Require().True(model.GameOver)

	s.apply(game, `{"winner":2,"current_player":null}`)
	model = game.Snapshot()
	s.Require().Equal(2, model.CurrentPlayer)
	s.Require().Equal(2, model.Winner)
	s.Require().True(model.GameOver)

	s.apply(game, `{"board":%s}`, boardJSON(func(board *ConnectFourBoard) {
		board[5][3] = CellPlayer1
	}))
	model = game.Snapshot()
	s.Require().Equal(CellPlayer1, model.Board[5][3])
	s.Require().Equal(2, model.Winner)
}

func (s *Suite) TestMalformedSnapshotIgnored() {
	game := NewConnectFour(s.sender, s.Logger)
	s.apply(game, `{"board":%s}`, boardJSON(func(board *ConnectFourBoard) {
		board[5][0] = CellPlayer2
	}))

	s.apply(game, `{"current_player":"two","game_over":true}`)
	s.apply(game, `{"board":[[1,2,3]]}`)
	s.apply(game, `not json at all`)
	s.apply(game, `[1,2,3]`)

	model := game.Snapshot()
	s.Require().Equal(1, model.CurrentPlayer)
	s.Require().True(model.GameOver)
	s.Require().Equal(CellPlayer2, model.Board[5][0])
	s.Require().Equal(CellEmpty, model.Board[0][0])
}

func (s *Suite) TestResetIsIdempotent() {
	sequence := []string{
		fmt.Sprintf(`{"players":%s,"current_player":1,"custom":{"a":1}}`, s.playersJSON()),
		`{"game_over":false,"phase":"MOVE","rolls_left":2,"scores":[1,2]}`,
		`{"current_player":0}`,
	}

	for _, kind := range Kinds() {
		s.Run(string(kind), func() {
			fresh := s.newReducer(kind)
			used := s.newReducer(kind)

			used.SetRoster(s.roster())
			s.apply(used, `{"current_player":1,"game_over":true,"cards":[1,1],"dice":[6,6,6,6,6],"leftover":true}`)
			used.Reset()
			used.Reset()

			for _, snapshot := range sequence {
				s.apply(fresh, snapshot)
				s.apply(used, snapshot)
			}
			s.Require().Equal(fresh.Model(), used.Model())
		})
	}
}

func (s *Suite) TestIsMyTurnWithoutSelf() {
	stranger := protocol.PlayerID(gofakeit.UUID())

	for _, kind := range Kinds() {
		s.Run(string(kind), func() {
			reducer := s.newReducer(kind)
			for current := 0; current < 3; current++ {
				s.apply(reducer, `{"current_player":%d}`, current)
				s.Require().False(reducer.IsMyTurn(s.p1.ID))
				s.Require().False(reducer.IsMyTurn(""))
			}

			reducer.SetRoster(s.roster())
			for current := 0; current < 3; current++ {
				s.apply(reducer, `{"current_player":%d}`, current)
				s.Require().False(reducer.IsMyTurn(stranger))
			}
		})
	}
}

func (s *Suite) TestConnectFourTurnIsOneBased() {
	game := NewConnectFour(s.sender, s.Logger)
	game.SetRoster(s.roster())

	s.apply(game, `{"current_player":1}`)
	s.Require().True(game.IsMyTurn(s.p1.ID))
	s.Require().False(game.IsMyTurn(s.p2.ID))
	s.Require().Equal(s.p1.DisplayName(), game.Snapshot().CurrentPlayerName())

	s.apply(game, `{"current_player":2}`)
	s.Require().False(game.IsMyTurn(s.p1.ID))
	s.Require().True(game.IsMyTurn(s.p2.ID))

	s.apply(game, `{"current_player":0}`)
	s.Require().False(game.IsMyTurn(s.p1.ID))
	s.Require().False(game.IsMyTurn(s.p2.ID))
	s.Require().Empty(game.Snapshot().CurrentPlayerName())
}

func (s *Suite) TestZeroBasedTurns() {
	for _, kind := range []protocol.GameKind{protocol.GameMemory, protocol.GameSantorini, protocol.GameYahtzee} {
		s.Run(string(kind), func() {
			reducer := s.newReducer(kind)
			reducer.SetRoster(s.roster())

			s.apply(reducer, `{"current_player":0}`)
			s.Require().True(reducer.IsMyTurn(s.p1.ID))
			s.Require().False(reducer.IsMyTurn(s.p2.ID))

			s.apply(reducer, `{"current_player":1}`)
			s.Require().True(reducer.IsMyTurn(s.p2.ID))

			// Out of range is no one's turn, never wrapped around
			s.apply(reducer, `{"current_player":2}`)
			s.Require().False(reducer.IsMyTurn(s.p1.ID))
			s.Require().False(reducer.IsMyTurn(s.p2.ID))

			s.apply(reducer, `{"current_player":-1}`)
			s.Require().False(reducer.IsMyTurn(s.p2.ID))
		})
	}
}

func (s *Suite) TestSnapshotPlayersOverrideRoster() {
	game := NewMemory(s.sender, s.Logger)
	game.SetRoster(s.roster())

	s.apply(game, `{"players":[{"id":"%s"},{"id":"%s"}],"current_player":0}`, s.p2.ID, s.p1.ID)
	s.Require().True(game.IsMyTurn(s.p2.ID))
	s.Require().False(game.IsMyTurn(s.p1.ID))
}

func (s *Suite) TestMemoryWinner() {
	game := NewMemory(s.sender, s.Logger)

	s.apply(game, `{"scores":[3,5],"players":%s,"game_over":true}`, s.playersJSON())
	winner, ok := game.Snapshot().Winner()
	s.Require().True(ok)
	s.Require().Equal(1, winner)

	s.apply(game, `{"scores":[5,5]}`)
	_, ok = game.Snapshot().Winner()
	s.Require().False(ok)

	game.Reset()
	s.apply(game, `{"scores":[1,7]}`)
	_, ok = game.Snapshot().Winner()
	s.Require().False(ok, "no winner before the server ends the game")

	testCases := []struct {
		scores []int
		winner int
		ok     bool
	}{
		{nil, -1, false},
		{[]int{4}, 0, true},
		{[]int{5, 3, 5}, -1, false},
		{[]int{5, 5, 7}, 2, true},
		{[]int{9, 2, 3}, 0, true},
	}
	for _, tc := range testCases {
		winner, ok := MemoryWinner(tc.scores)
		s.Require().Equal(tc.ok, ok, "scores %v", tc.scores)
		s.Require().Equal(tc.winner, winner, "scores %v", tc.scores)
	}
}

func (s *Suite) TestConnectFourProposeMove() {
	game := NewConnectFour(s.sender, s.Logger)
	game.SetRoster(s.roster())
	s.apply(game, `{"current_player":1,"board":%s}`, boardJSON(func(board *ConnectFourBoard) {
		for row := 0; row < ConnectFourRows; row++ {
			board[row][0] = CellPlayer1
		}
	}))

	err := game.ProposeMove(s.p2.ID, ConnectFourMove{Column: 3})
	s.Require().ErrorIs(err, ErrNotYourTurn)

	err = game.ProposeMove(s.p1.ID, ConnectFourMove{Column: 0})
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p1.ID, ConnectFourMove{Column: ConnectFourColumns})
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p1.ID, NewFlipMove(1))
	s.Require().ErrorIs(err, ErrUnexpectedMove)

	s.sender.EXPECT().SendGameMove(ConnectFourMove{Column: 3}).Return(nil).Times(1)
	err = game.ProposeMove(s.p1.ID, &ConnectFourMove{Column: 3})
	s.Require().NoError(err)

	sendErr := errors.New("not connected")
	s.sender.EXPECT().SendGameMove(ConnectFourMove{Column: 4}).Return(sendErr).Times(1)
	err = game.ProposeMove(s.p1.ID, ConnectFourMove{Column: 4})
	s.Require().ErrorIs(err, sendErr)

	s.apply(game, `{"game_over":true,"winner":1}`)
	err = game.ProposeMove(s.p1.ID, ConnectFourMove{Column: 3})
	s.Require().ErrorIs(err, ErrGameOver)
}

func (s *Suite) TestMemoryProposeMove() {
	game := NewMemory(s.sender, s.Logger)
	s.apply(game, `{"players":%s,"current_player":0,"flipped":[2],"matched":[7,8]}`, s.playersJSON())

	err := game.ProposeMove(s.p1.ID, NewFlipMove(2))
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p1.ID, NewFlipMove(8))
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p1.ID, NewFlipMove(MemoryCards))
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p1.ID, MemoryMove{Action: "peek", CardIndex: 1})
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p2.ID, NewFlipMove(5))
	s.Require().ErrorIs(err, ErrNotYourTurn)

	s.sender.EXPECT().SendGameMove(MemoryMove{Action: "flip", CardIndex: 5}).Return(nil).Times(1)
	err = game.ProposeMove(s.p1.ID, NewFlipMove(5))
	s.Require().NoError(err)

	model := game.Snapshot()
	s.Require().True(model.IsFlipped(2))
	s.Require().True(model.IsMatched(7))
	s.Require().False(model.IsFlipped(5), "the server decides when a card is flipped")
}

func (s *Suite) TestSantoriniPassthrough() {
	game := NewSantorini(s.sender, s.Logger)
	s.Require().Equal(SantoriniPhasePlaceWorker, game.Snapshot().Phase)

	s.apply(game, `{"board":[[0,1],[2,3]],"players":%s,"current_player":1,"phase":"BUILD","workers":[{"x":1}]}`, s.playersJSON())
	s.apply(game, `{"phase":""}`)

	model := game.Snapshot()
	s.Require().Equal(SantoriniPhaseBuild, model.Phase)
	s.Require().JSONEq(`[[0,1],[2,3]]`, string(model.Board))
	s.Require().Contains(model.Extra, "workers")
	s.Require().NotContains(model.Extra, "phase")

	err := game.ProposeMove(s.p1.ID, SantoriniMove{X: 1, Y: 1, Phase: SantoriniPhaseBuild})
	s.Require().ErrorIs(err, ErrNotYourTurn)

	err = game.ProposeMove(s.p2.ID, SantoriniMove{X: SantoriniBoardSize, Y: 0})
	s.Require().ErrorIs(err, ErrIllegalMove)

	move := SantoriniMove{X: 2, Y: 4, Phase: SantoriniPhaseBuild, Worker: 1}
	s.sender.EXPECT().SendGameMove(move).Return(nil).Times(1)
	err = game.ProposeMove(s.p2.ID, move)
	s.Require().NoError(err)

	game.Reset()
	model = game.Snapshot()
	s.Require().Equal(SantoriniPhasePlaceWorker, model.Phase)
	s.Require().Nil(model.Extra)
	s.Require().Empty(model.Players)
}

func (s *Suite) TestYahtzeePassthrough() {
	game := NewYahtzee(s.sender, s.Logger)
	s.Require().Equal(YahtzeeRolls, game.Snapshot().RollsLeft)

	s.apply(game, `{"dice":[1,2,3,4,5],"kept":[true,false,false,false,true],"players":%s,"current_player":0,"rolls_left":0,"scores":{"a":[1]}}`, s.playersJSON())

	model := game.Snapshot()
	s.Require().Equal([YahtzeeDice]int{1, 2, 3, 4, 5}, model.Dice)
	s.Require().Equal([YahtzeeDice]bool{true, false, false, false, true}, model.Kept)
	s.Require().Zero(model.RollsLeft)
	s.Require().Contains(model.Extra, "scores")

	err := game.ProposeMove(s.p1.ID, YahtzeeMove{Action: YahtzeeActionRoll})
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p1.ID, YahtzeeMove{Action: YahtzeeActionHold, DiceIdx: YahtzeeDice})
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p1.ID, YahtzeeMove{Action: "cheat"})
	s.Require().ErrorIs(err, ErrIllegalMove)

	err = game.ProposeMove(s.p2.ID, YahtzeeMove{Action: YahtzeeActionHold, DiceIdx: 1})
	s.Require().ErrorIs(err, ErrNotYourTurn)

	hold := YahtzeeMove{Action: YahtzeeActionHold, DiceIdx: 1}
	s.sender.EXPECT().SendGameMove(hold).Return(nil).Times(1)
	err = game.ProposeMove(s.p1.ID, hold)
	s.Require().NoError(err)

	score := YahtzeeMove{Action: YahtzeeActionScore, Category: 12}
	s.sender.EXPECT().SendGameMove(score).Return(nil).Times(1)
	err = game.ProposeMove(s.p1.ID, &score)
	s.Require().NoError(err)
}

func (s *Suite) TestModelIsCopy() {
	game := NewMemory(s.sender, s.Logger)
	s.apply(game, `{"cards":[1,2,3],"scores":[0,0]}`)

	model := game.Snapshot()
	model.Cards[0] = 42
	model.Scores[1] = 99

	again := game.Snapshot()
	s.Require().Equal([]int{1, 2, 3}, again.Cards)
	s.Require().Equal([]int{0, 0}, again.Scores)
}

func (s *Suite) TestCurrentPlayerName() {
	connectFour := NewConnectFour(s.sender, s.Logger)
	connectFour.SetRoster(s.roster())
	s.Require().Equal("Teddy", connectFour.Snapshot().CurrentPlayerName())
	s.apply(connectFour, `{"current_player":2}`)
	s.Require().Equal("Kaycat", connectFour.Snapshot().CurrentPlayerName())
	s.apply(connectFour, `{"current_player":3}`)
	s.Require().Empty(connectFour.Snapshot().CurrentPlayerName())

	memory := NewMemory(s.sender, s.Logger)
	memory.SetRoster(s.roster())
	s.Require().Equal("Teddy", memory.Snapshot().CurrentPlayerName())
	s.apply(memory, `{"current_player":1}`)
	s.Require().Equal("Kaycat", memory.Snapshot().CurrentPlayerName())

	santorini := NewSantorini(s.sender, s.Logger)
	santorini.SetRoster(s.roster())
	s.apply(santorini, `{"current_player":1}`)
	s.Require().Equal("Kaycat", santorini.Snapshot().CurrentPlayerName())

	yahtzee := NewYahtzee(s.sender, s.Logger)
	s.Require().Empty(yahtzee.Snapshot().CurrentPlayerName())
	yahtzee.SetRoster(s.roster())
	s.Require().Equal("Teddy", yahtzee.Snapshot().CurrentPlayerName())
}

func (s *Suite) TestSantoriniLevels() {
	game := NewSantorini(s.sender, s.Logger)

	_, ok := game.Snapshot().Levels()
	s.Require().False(ok)

	s.apply(game, `{"board":[[0,1,2,3,4],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,1]]}`)
	levels, ok := game.Snapshot().Levels()
	s.Require().True(ok)
	s.Require().Len(levels, SantoriniBoardSize)
	s.Require().Equal([]int{0, 1, 2, 3, 4}, levels[0])

	s.apply(game, `{"board":{"cells":"opaque"}}`)
	_, ok = game.Snapshot().Levels()
	s.Require().False(ok)
}

func (s *Suite) TestModelIsTurnOf() {
	connectFour := NewConnectFour(s.sender, s.Logger)
	connectFour.SetRoster(s.roster())
	s.Require().True(connectFour.Snapshot().IsTurnOf(s.p1.ID))
	s.Require().False(connectFour.Snapshot().IsTurnOf(s.p2.ID))

	memory := NewMemory(s.sender, s.Logger)
	memory.SetRoster(s.roster())
	s.apply(memory, `{"current_player":1}`)
	s.Require().True(memory.Snapshot().IsTurnOf(s.p2.ID))
	s.Require().False(memory.Snapshot().IsTurnOf(""))
}
