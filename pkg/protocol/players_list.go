package protocol

import "golang.org/x/exp/slices"

// PlayersList is ordered: index 0 is the host and the order is the turn order.
type PlayersList []Player

func (l PlayersList) Get(id PlayerID) (Player, bool) {
	index := l.Index(id)
	if index < 0 {
		return Player{}, false
	}
	return l[index], true
}

func (l PlayersList) Index(id PlayerID) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(l, func(player Player) bool {
		return player.ID == id
	})
}

func (l PlayersList) Host() (Player, bool) {
	if len(l) == 0 {
		return Player{}, false
	}
	return l[0], true
}

func (l PlayersList) Clone() PlayersList {
	if l == nil {
		return nil
	}
	return slices.Clone(l)
}
