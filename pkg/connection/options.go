package connection

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/internal/transport"
)

type Option func(*Manager)

func WithContext(ctx context.Context) Option {
	return func(m *Manager) {
		m.ctx = ctx
	}
}

func WithDialer(d transport.Dialer) Option {
	return func(m *Manager) {
		m.dialer = d
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = l
	}
}

func WithClock(c clockwork.Clock) Option {
	return func(m *Manager) {
		m.clock = c
	}
}

func WithConnectTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.config.ConnectTimeout = d
	}
}

func WithReconnectPolicy(attempts int, delay time.Duration) Option {
	return func(m *Manager) {
		m.config.ReconnectAttempts = attempts
		m.config.ReconnectDelay = delay
	}
}
