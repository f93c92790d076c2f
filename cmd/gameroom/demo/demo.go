package demo

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/internal/app"
	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/internal/transport"
	"github.com/six78/gameroom-cli/internal/view/commands"
	"github.com/six78/gameroom-cli/pkg/games"
	"github.com/six78/gameroom-cli/pkg/protocol"
	"github.com/six78/gameroom-cli/pkg/session"
)

const (
	waitTimeout  = 10 * time.Second
	pollInterval = 200 * time.Millisecond
	maxTurns     = 42

	hostColumn  = 3
	guestColumn = 4
)

// Demo plays a Connect Four round against a scripted guest. The host
// is driven through key presses, the same way a user would play.
type Demo struct {
	ctx     context.Context
	host    *app.App
	events  *session.Subscription
	program *tea.Program
	logger  *zap.Logger

	guest       *app.App
	guestEvents *session.Subscription
}

func New(ctx context.Context, host *app.App, program *tea.Program) *Demo {
	return &Demo{
		ctx:     ctx,
		host:    host,
		program: program,
		logger:  config.Logger.Named("demo"),
	}
}

func (d *Demo) Stop() {
	d.logger.Info("stopping")

	if d.guest != nil {
		d.guest.Stop()
	}
}

func (d *Demo) Routine() {
	defer d.program.Quit()
	defer d.Stop()

	d.logger.Info("started")

	err := d.waitForHost()
	if err != nil {
		d.logger.Error("host is not ready", zap.Error(err))
		return
	}
	d.events = d.host.Session.Subscribe()
	d.logger.Info("host connected")

	// Create new room
	var roomID protocol.RoomID
	d.sendShortcut(commands.DefaultKeyMap.ConnectFour)
	err = d.waitForCondition(d.events, d.host.Session, func(state session.Snapshot) bool {
		if state.Screen != session.ScreenLobby || state.Room == nil {
			return false
		}
		roomID = state.Room.ID
		return true
	})
	if err != nil {
		d.logger.Error("failed to wait for the room", zap.Error(err))
		return
	}
	d.logger.Info("room created", zap.String("roomID", roomID.String()))

	// Add the guest
	d.guest, err = d.createGuest(roomID)
	if err != nil {
		d.logger.Error("failed to create guest", zap.Error(err))
		return
	}

	err = d.waitForCondition(d.events, d.host.Session, func(state session.Snapshot) bool {
		return len(state.Roster) == 2 || (state.Room != nil && state.Room.Players == 2)
	})
	if err != nil {
		d.logger.Error("failed to wait for the guest", zap.Error(err))
		return
	}
	d.logger.Info("guest joined")
	time.Sleep(time.Second)

	// Start the game
	d.sendShortcut(commands.DefaultKeyMap.Start)
	err = d.waitForCondition(d.events, d.host.Session, func(state session.Snapshot) bool {
		return state.Screen == session.ScreenGame
	})
	if err != nil {
		d.logger.Error("failed to wait for the game", zap.Error(err))
		return
	}
	d.logger.Info("game started")
	time.Sleep(time.Second)

	// Move the cursor to the host column
	for i := 0; i < hostColumn; i++ {
		d.sendKey(tea.KeyRight)
		time.Sleep(200 * time.Millisecond)
	}

	err = d.playRound()
	if err != nil {
		d.logger.Error("failed to play", zap.Error(err))
		return
	}

	time.Sleep(3 * time.Second)
	d.sendKey(tea.KeyEsc)
	time.Sleep(time.Second)

	d.logger.Info("finished")
}

func (d *Demo) playRound() error {
	for turn := 0; turn < maxTurns; turn++ {
		state, ok := d.connectFour()
		if !ok {
			return errors.New("no connect four state")
		}
		if state.GameOver {
			d.logger.Info("game over", zap.Int("winner", state.Winner))
			return nil
		}

		// Random delay to simulate human behavior
		time.Sleep(time.Duration(500+rand.Intn(1500)) * time.Millisecond)

		hostID := d.host.Session.Snapshot().SelfID
		if state.IsTurnOf(hostID) {
			d.sendKey(tea.KeyEnter)
		} else {
			err := d.guest.Session.ProposeMove(games.ConnectFourMove{Column: guestColumn})
			if err != nil {
				return errors.Wrap(err, "guest failed to move")
			}
		}

		current := state.CurrentPlayer
		err := d.waitForCondition(d.events, d.host.Session, func(snapshot session.Snapshot) bool {
			next, ok := snapshot.Game.(games.ConnectFourModel)
			return ok && (next.GameOver || next.CurrentPlayer != current)
		})
		if err != nil {
			return errors.Wrap(err, "failed to wait for the turn")
		}
	}
	return nil
}

func (d *Demo) connectFour() (games.ConnectFourModel, bool) {
	state, ok := d.host.Session.Snapshot().Game.(games.ConnectFourModel)
	return state, ok
}

func (d *Demo) sendShortcut(key key.Binding) {
	keyMsg := tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key.Keys()[0]),
	}
	d.program.Send(keyMsg)
}

func (d *Demo) sendKey(key tea.KeyType) {
	keyMsg := tea.KeyMsg{
		Type: key,
	}
	d.program.Send(keyMsg)
}

func (d *Demo) createGuest(roomID protocol.RoomID) (*app.App, error) {
	logger := config.Logger.Named("guest")

	guest := app.NewApp([]app.Option{
		app.WithDialer(transport.NewWebsocketDialer(logger)),
		app.WithLogger(logger),
		app.WithServerURL(d.host.URL()),
		app.WithAvatar(protocol.AvatarKind(2)),
	})
	if guest == nil {
		return nil, errors.New("failed to create guest app")
	}

	err := guest.Initialize()
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize guest")
	}

	err = guest.Connect()
	if err != nil {
		guest.Stop()
		return nil, errors.Wrap(err, "failed to connect guest")
	}
	d.guestEvents = guest.Session.Subscribe()

	err = d.waitForCondition(d.guestEvents, guest.Session, func(state session.Snapshot) bool {
		return state.SelfID != ""
	})
	if err != nil {
		guest.Stop()
		return nil, errors.Wrap(err, "guest has no identity")
	}

	err = guest.Session.JoinRoom(roomID)
	if err != nil {
		guest.Stop()
		return nil, errors.Wrap(err, "failed to join room")
	}

	return guest, nil
}

// waitForHost polls until the view has initialized the app and the
// server assigned an identity.
func (d *Demo) waitForHost() error {
	timeout := time.After(waitTimeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if d.host.Session != nil && d.host.Session.Snapshot().SelfID != "" {
			return nil
		}
		select {
		case <-ticker.C:
		case <-timeout:
			return errors.New("timeout waiting for host")
		case <-d.ctx.Done():
			return d.ctx.Err()
		}
	}
}

// waitForCondition checks the session on every event. Events may be
// dropped for slow subscribers, so the session is also polled.
func (d *Demo) waitForCondition(sub *session.Subscription, s *session.Session, condition func(state session.Snapshot) bool) error {
	timeout := time.After(waitTimeout)
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		if condition(s.Snapshot()) {
			time.Sleep(500 * time.Millisecond)
			return nil
		}
		select {
		case <-sub.Events:
		case <-ticker.C:
		case <-timeout:
			return errors.New("timeout waiting for state condition")
		case <-d.ctx.Done():
			return d.ctx.Err()
		}
	}
}
