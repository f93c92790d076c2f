package connection

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/internal/transport"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

var (
	ErrNotConnected       = errors.New("not connected")
	ErrConnectionTimeout  = errors.New("connection timeout")
	ErrConnectInProgress  = errors.New("connection attempt in progress")
	ErrConnectSuperseded  = errors.New("connection attempt superseded")
	ErrReconnectExhausted = errors.New("reconnection attempts exhausted")
)

// Handler receives every inbound message of the type it is registered for.
type Handler func(message protocol.Message)

// Manager owns at most one transport channel at a time. It reconnects
// after abnormal closures and dispatches inbound messages by type.
type Manager struct {
	ctx    context.Context
	logger *zap.Logger
	dialer transport.Dialer
	clock  clockwork.Clock
	config configuration

	mutex        sync.Mutex
	url          string
	state        State
	channel      transport.Channel
	generation   int
	attempts     int
	reconnectSeq int
	reconnect    clockwork.Timer
	playerID     protocol.PlayerID
	rooms        []protocol.RoomInfo
	lastError    error
	handlers     map[protocol.MessageType]Handler
	subscribers  []StatusSubscription
}

func NewManager(opts []Option) *Manager {
	manager := &Manager{
		config:   defaultConfig,
		state:    StateDisconnected,
		handlers: make(map[protocol.MessageType]Handler),
	}

	for _, opt := range opts {
		opt(manager)
	}

	if manager.ctx == nil {
		manager.ctx = context.Background()
	}

	if manager.logger == nil {
		manager.logger = zap.NewNop()
	}
	manager.logger = manager.logger.Named("connection")

	if manager.dialer == nil {
		manager.logger.Error("dialer is required")
		return nil
	}

	if manager.clock == nil {
		manager.clock = clockwork.NewRealClock()
	}

	return manager
}

// Connect dials url and blocks until the channel is open, the attempt
// fails or the connect timeout elapses. A pending automatic reconnection
// is cancelled. A failed manual attempt is not retried.
func (m *Manager) Connect(ctx context.Context, url string) error {
	m.mutex.Lock()
	switch m.state {
	case StateConnecting:
		m.mutex.Unlock()
		return ErrConnectInProgress
	case StateConnected:
		current := m.url
		m.mutex.Unlock()
		m.logger.Debug("already connected", zap.String("url", current))
		return nil
	}

	m.stopReconnectLocked()
	m.url = url
	m.attempts = 0
	m.generation++
	generation := m.generation
	m.setStateLocked(StateConnecting)
	m.mutex.Unlock()

	return m.dial(ctx, url, generation, false)
}

func (m *Manager) dial(ctx context.Context, url string, generation int, automatic bool) error {
	logger := m.logger.With(
		zap.String("connectionID", uuid.NewString()),
		zap.String("url", url),
		zap.Bool("automatic", automatic),
	)
	logger.Info("connecting")

	type dialResult struct {
		channel transport.Channel
		err     error
	}

	dialCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := make(chan dialResult, 1)
	go func() {
		channel, err := m.dialer.Dial(dialCtx, url)
		results <- dialResult{channel, err}
	}()

	abandon := func() {
		go func() {
			result := <-results
			if result.channel != nil {
				_ = result.channel.Close()
			}
		}()
	}

	timer := m.clock.NewTimer(m.config.ConnectTimeout)
	defer timer.Stop()

	var err error
	select {
	case result := <-results:
		if result.err == nil {
			if m.opened(generation, result.channel, logger) {
				return nil
			}
			_ = result.channel.Close()
			return ErrConnectSuperseded
		}
		err = errors.Wrap(result.err, "failed to connect")
	case <-timer.Chan():
		abandon()
		err = ErrConnectionTimeout
	case <-ctx.Done():
		abandon()
		err = errors.Wrap(ctx.Err(), "connection cancelled")
	}

	logger.Warn("connection attempt failed", zap.Error(err))
	m.failed(generation, err, automatic)
	return err
}

func (m *Manager) opened(generation int, channel transport.Channel, logger *zap.Logger) bool {
	m.mutex.Lock()
	if generation != m.generation || m.state != StateConnecting {
		m.mutex.Unlock()
		logger.Info("dropping superseded connection")
		return false
	}

	m.channel = channel
	m.attempts = 0
	m.lastError = nil
	m.setStateLocked(StateConnected)
	m.mutex.Unlock()

	logger.Info("connected")
	go m.processEvents(channel, logger)
	return true
}

func (m *Manager) failed(generation int, err error, automatic bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if generation != m.generation {
		return
	}

	m.lastError = err
	m.state = StateDisconnected
	if automatic {
		m.scheduleReconnectLocked()
	}
	m.notifyLocked()
}

func (m *Manager) processEvents(channel transport.Channel, logger *zap.Logger) {
	for event := range channel.Events() {
		switch event.Kind {
		case transport.EventMessage:
			m.handlePayload(event.Payload, logger)
		case transport.EventError:
			logger.Warn("transport error", zap.Error(event.Err))
		case transport.EventClose:
			m.handleClose(channel, event, logger)
		}
	}

	// No-op when the close event was already handled
	m.handleClose(channel, transport.Event{
		Kind: transport.EventClose,
		Code: transport.CloseAbnormalClosure,
	}, logger)
}

func (m *Manager) handleClose(channel transport.Channel, event transport.Event, logger *zap.Logger) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.channel != channel {
		return
	}

	m.channel = nil
	m.state = StateDisconnected

	if event.Normal() {
		logger.Info("connection closed")
		m.notifyLocked()
		return
	}

	logger.Warn("connection lost",
		zap.Int("code", event.Code),
		zap.String("reason", event.Reason))

	// The server issues a new identity on the next connection
	m.playerID = ""
	m.lastError = errors.Errorf("connection closed with code %d", event.Code)
	m.scheduleReconnectLocked()
	m.notifyLocked()
}

func (m *Manager) scheduleReconnectLocked() {
	if m.attempts >= m.config.ReconnectAttempts {
		m.lastError = ErrReconnectExhausted
		m.logger.Error("giving up reconnecting", zap.Int("attempts", m.attempts))
		return
	}

	m.attempts++
	m.reconnectSeq++
	seq := m.reconnectSeq

	m.logger.Info("scheduling reconnection",
		zap.Int("attempt", m.attempts),
		zap.Int("maxAttempts", m.config.ReconnectAttempts),
		zap.Duration("delay", m.config.ReconnectDelay))

	m.reconnect = m.clock.AfterFunc(m.config.ReconnectDelay, func() {
		go m.reconnectNow(seq)
	})
}

func (m *Manager) reconnectNow(seq int) {
	m.mutex.Lock()
	if m.reconnect == nil || seq != m.reconnectSeq || m.state != StateDisconnected {
		m.mutex.Unlock()
		return
	}

	m.reconnect = nil
	m.generation++
	generation := m.generation
	url := m.url
	m.setStateLocked(StateConnecting)
	m.mutex.Unlock()

	_ = m.dial(m.ctx, url, generation, true)
}

func (m *Manager) stopReconnectLocked() {
	if m.reconnect == nil {
		return
	}
	m.reconnect.Stop()
	m.reconnect = nil
	m.reconnectSeq++
}

func (m *Manager) handlePayload(payload []byte, logger *zap.Logger) {
	message, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		logger.Warn("dropping malformed message",
			zap.Error(err),
			zap.String("payload", string(payload)))
		return
	}

	logger = logger.With(zap.String("type", string(message.Type)))
	logger.Debug("message received")

	m.mutex.Lock()
	switch message.Type {
	case protocol.MessageTypeConnected:
		m.playerID = message.PlayerID
		logger.Info("player identity assigned", zap.String("playerID", string(message.PlayerID)))
		m.notifyLocked()
	case protocol.MessageTypeRoomList:
		var data protocol.RoomListData
		if err := message.DecodeData(&data); err != nil {
			logger.Warn("failed to decode room list", zap.Error(err))
		} else {
			m.rooms = data.Rooms
		}
	case protocol.MessageTypeError:
		m.lastError = decodeServerError(message)
		logger.Warn("server error", zap.Error(m.lastError))
		m.notifyLocked()
	}
	handler := m.handlers[message.Type]
	m.mutex.Unlock()

	if handler == nil {
		logger.Debug("no handler registered")
		return
	}
	handler(*message)
}

func decodeServerError(message *protocol.Message) *protocol.ServerError {
	var data protocol.ErrorData
	if err := message.DecodeData(&data); err != nil || data.Error == "" {
		return &protocol.ServerError{Message: "unknown error"}
	}
	return &protocol.ServerError{Message: data.Error}
}

// RegisterHandler binds handler to messageType, replacing any previous one.
// A nil handler removes the binding.
func (m *Manager) RegisterHandler(messageType protocol.MessageType, handler Handler) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if handler == nil {
		delete(m.handlers, messageType)
		return
	}
	m.handlers[messageType] = handler
}

// Send stamps the message with the current time when it has none
// and writes it to the open channel.
func (m *Manager) Send(message protocol.Message) error {
	m.mutex.Lock()
	channel := m.channel
	m.mutex.Unlock()

	if channel == nil {
		m.logger.Warn("cannot send message while disconnected",
			zap.String("type", string(message.Type)))
		return ErrNotConnected
	}

	if message.Timestamp.IsZero() {
		message.Timestamp = m.clock.Now().UTC()
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "failed to marshal message")
	}

	m.logger.Debug("sending message",
		zap.String("type", string(message.Type)),
		zap.ByteString("payload", payload))

	err = channel.Send(payload)
	if err != nil {
		return errors.Wrapf(err, "failed to send %s", message.Type)
	}
	return nil
}

// Close performs a normal closure. No reconnection follows.
func (m *Manager) Close() {
	m.mutex.Lock()
	m.stopReconnectLocked()
	m.generation++
	channel := m.channel
	m.channel = nil
	m.attempts = 0
	m.state = StateDisconnected
	m.notifyLocked()
	m.mutex.Unlock()

	if channel == nil {
		return
	}

	m.logger.Info("closing connection")
	if err := channel.Close(); err != nil {
		m.logger.Warn("failed to close channel", zap.Error(err))
	}
}

// Stop closes the connection and all status subscriptions.
func (m *Manager) Stop() {
	m.Close()

	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, subscriber := range m.subscribers {
		close(subscriber)
	}
	m.subscribers = nil
}

func (m *Manager) State() State {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.state
}

func (m *Manager) IsConnected() bool {
	return m.State() == StateConnected
}

func (m *Manager) PlayerID() protocol.PlayerID {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.playerID
}

// Rooms returns the most recent room list received from the server.
func (m *Manager) Rooms() []protocol.RoomInfo {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	rooms := make([]protocol.RoomInfo, len(m.rooms))
	copy(rooms, m.rooms)
	return rooms
}

func (m *Manager) ReconnectAttempts() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.attempts
}

func (m *Manager) LastError() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.lastError
}

func (m *Manager) Status() Status {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.statusLocked()
}

func (m *Manager) SubscribeToStatus() StatusSubscription {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	channel := make(StatusSubscription, 10)
	m.subscribers = append(m.subscribers, channel)
	return channel
}

func (m *Manager) reconnectPending() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.reconnect != nil
}

func (m *Manager) statusLocked() Status {
	return Status{
		State:             m.state,
		PlayerID:          m.playerID,
		ReconnectAttempts: m.attempts,
		MaxAttempts:       m.config.ReconnectAttempts,
		ReconnectPending:  m.reconnect != nil,
		LastError:         m.lastError,
	}
}

func (m *Manager) setStateLocked(state State) {
	m.state = state
	m.notifyLocked()
}

func (m *Manager) notifyLocked() {
	status := m.statusLocked()
	for _, subscriber := range m.subscribers {
		select {
		case subscriber <- status:
		default:
			m.logger.Debug("status subscriber is full, skipping")
		}
	}
}
