package app

import (
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/internal/transport"
	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

type Option func(*App)

func WithDialer(d transport.Dialer) Option {
	return func(a *App) {
		a.dialer = d
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.logger = l
	}
}

func WithServerURL(url string) Option {
	return func(a *App) {
		a.url = url
	}
}

func WithAvatar(avatar protocol.AvatarKind) Option {
	return func(a *App) {
		a.avatar = avatar
	}
}

// WithConnectionOptions are appended to the options the app passes
// to the connection manager.
func WithConnectionOptions(opts ...connection.Option) Option {
	return func(a *App) {
		a.connectionOptions = append(a.connectionOptions, opts...)
	}
}
