package games

//go:generate mockgen -source=sender.go -destination=mock/sender.go

// MoveSender forwards a move intent as a game_move envelope.
type MoveSender interface {
	SendGameMove(move any) error
}
