package app

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/internal/transport"
	"github.com/six78/gameroom-cli/pkg/connection"
	"github.com/six78/gameroom-cli/pkg/protocol"
	"github.com/six78/gameroom-cli/pkg/session"
)

var ErrNotInitialized = errors.New("app is not initialized")

// App owns the single connection and the single session of the process.
type App struct {
	Connection *connection.Manager
	Session    *session.Session

	logger            *zap.Logger
	dialer            transport.Dialer
	url               string
	avatar            protocol.AvatarKind
	connectionOptions []connection.Option

	ctx  context.Context
	quit context.CancelFunc

	statusSubscription  connection.StatusSubscription
	sessionSubscription *session.Subscription
}

func NewApp(opts []Option) *App {
	ctx, quit := context.WithCancel(context.Background())

	a := &App{
		ctx:  ctx,
		quit: quit,
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = zap.NewNop()
	}

	if a.dialer == nil {
		a.logger.Error("dialer is required")
		quit()
		return nil
	}

	return a
}

func (a *App) Initialize() error {
	options := []connection.Option{
		connection.WithContext(a.ctx),
		connection.WithDialer(a.dialer),
		connection.WithLogger(a.logger),
	}
	a.Connection = connection.NewManager(append(options, a.connectionOptions...))
	if a.Connection == nil {
		return errors.New("failed to create connection manager")
	}

	a.Session = session.NewSession([]session.Option{
		session.WithConnection(a.Connection),
		session.WithLogger(a.logger),
		session.WithAvatar(a.avatar),
	})
	if a.Session == nil {
		return errors.New("failed to create session")
	}

	a.Session.Initialize()
	a.statusSubscription = a.Connection.SubscribeToStatus()
	a.sessionSubscription = a.Session.Subscribe()
	return nil
}

// Connect dials the server and announces the avatar once the channel is open.
func (a *App) Connect() error {
	if a.Connection == nil {
		return ErrNotInitialized
	}

	err := a.Connection.Connect(a.ctx, a.url)
	if err != nil {
		return errors.Wrap(err, "failed to connect")
	}

	err = a.Session.SetAvatar(a.Session.Snapshot().Avatar)
	if err != nil {
		a.logger.Warn("failed to announce avatar", zap.Error(err))
	}
	return nil
}

func (a *App) Stop() {
	if a.Session != nil {
		a.Session.Stop()
	}
	if a.Connection != nil {
		a.Connection.Stop()
	}
	a.quit()
}

func (a *App) URL() string {
	return a.url
}

// StatusUpdates is the app's connection status subscription. Receivers
// must pass every status to HandleConnectionStatus.
func (a *App) StatusUpdates() <-chan connection.Status {
	return a.statusSubscription
}

func (a *App) SessionEvents() <-chan session.Event {
	if a.sessionSubscription == nil {
		return nil
	}
	return a.sessionSubscription.Events
}

func (a *App) WaitForConnectionStatus() (connection.Status, bool, error) {
	if a.statusSubscription == nil {
		a.logger.Error("connection status subscription not created")
		return connection.Status{}, false, ErrNotInitialized
	}

	status, more := <-a.statusSubscription
	if !more {
		a.statusSubscription = nil
		return status, false, nil
	}

	a.HandleConnectionStatus(status)
	return status, more, nil
}

func (a *App) WaitForSessionEvent() (session.Event, bool, error) {
	if a.sessionSubscription == nil {
		a.logger.Error("session subscription not created")
		return session.Event{}, false, ErrNotInitialized
	}

	event, more := <-a.sessionSubscription.Events
	if !more {
		a.sessionSubscription = nil
	}
	return event, more, nil
}

// HandleConnectionStatus drops the room when the connection goes down.
// The server forgets room membership together with the player identity.
func (a *App) HandleConnectionStatus(status connection.Status) {
	if status.State != connection.StateDisconnected {
		return
	}
	if a.Session == nil || a.Session.Screen() == session.ScreenHome {
		return
	}
	a.logger.Info("connection lost, leaving room")
	a.Session.ReturnToHome()
}
