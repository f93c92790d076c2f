package protocol

type PlayerID string

type Player struct {
	ID     PlayerID   `json:"id"`
	Name   string     `json:"name,omitempty"`
	Avatar AvatarKind `json:"avatar"`
}

// DisplayName falls back to the avatar name, the way the server names players.
func (p Player) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Avatar.Name()
}
