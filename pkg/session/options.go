package session

import (
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

type Option func(*Session)

func WithConnection(c Connection) Option {
	return func(s *Session) {
		s.connection = c
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

func WithAvatar(a protocol.AvatarKind) Option {
	return func(s *Session) {
		s.avatar = a
	}
}
