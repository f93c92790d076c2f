package transport

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	defaultHandshakeTimeout = 5 * time.Second
	defaultWriteDeadline    = 5 * time.Second
	defaultCloseGracePeriod = time.Second
	defaultMaxMessageSize   = 1 << 20
	defaultEventsBufferSize = 64

	// pongWait - pingPeriod is how long the server has to answer a ping
	defaultPingPeriod = 20 * time.Second
	defaultPongWait   = 30 * time.Second
)

var ErrChannelClosed = errors.New("channel closed")

type WebsocketDialer struct {
	dialer     *websocket.Dialer
	header     http.Header
	logger     *zap.Logger
	pingPeriod time.Duration
	pongWait   time.Duration
}

func NewWebsocketDialer(logger *zap.Logger) *WebsocketDialer {
	return &WebsocketDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: defaultHandshakeTimeout,
		},
		logger:     logger.Named("websocket"),
		pingPeriod: defaultPingPeriod,
		pongWait:   defaultPongWait,
	}
}

// WithKeepalive overrides ping period and pong wait. Zero period disables pings.
func (d *WebsocketDialer) WithKeepalive(pingPeriod, pongWait time.Duration) *WebsocketDialer {
	d.pingPeriod = pingPeriod
	d.pongWait = pongWait
	return d
}

func (d *WebsocketDialer) Dial(ctx context.Context, url string) (Channel, error) {
	conn, response, err := d.dialer.DialContext(ctx, url, d.header)
	if response != nil && response.Body != nil {
		_ = response.Body.Close()
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to dial %s", url)
	}

	channel := &websocketChannel{
		conn:       conn,
		logger:     d.logger.With(zap.String("url", url)),
		events:     make(chan Event, defaultEventsBufferSize),
		done:       make(chan struct{}),
		pingPeriod: d.pingPeriod,
		pongWait:   d.pongWait,
	}

	go channel.readLoop()
	if channel.pingPeriod > 0 {
		go channel.pingLoop()
	}

	channel.logger.Debug("websocket connected")
	return channel, nil
}

type websocketChannel struct {
	conn   *websocket.Conn
	logger *zap.Logger

	events chan Event
	done   chan struct{}

	writeMutex    sync.Mutex
	closeOnce     sync.Once
	closedLocally atomic.Bool

	pingPeriod time.Duration
	pongWait   time.Duration
}

func (c *websocketChannel) Events() <-chan Event {
	return c.events
}

func (c *websocketChannel) Send(payload []byte) error {
	if c.closedLocally.Load() {
		return ErrChannelClosed
	}
	select {
	case <-c.done:
		return ErrChannelClosed
	default:
	}

	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	err := c.conn.SetWriteDeadline(time.Now().Add(defaultWriteDeadline))
	if err != nil {
		return errors.Wrap(err, "failed to set write deadline")
	}
	err = c.conn.WriteMessage(websocket.TextMessage, payload)
	if err != nil {
		return errors.Wrap(err, "failed to write message")
	}
	return nil
}

// Close performs a normal closure. The close event is still delivered
// through Events, with CloseNormalClosure code.
func (c *websocketChannel) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.closedLocally.Store(true)

		message := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		deadline := time.Now().Add(defaultWriteDeadline)
		writeErr := c.conn.WriteControl(websocket.CloseMessage, message, deadline)
		if writeErr != nil && !errors.Is(writeErr, websocket.ErrCloseSent) {
			c.logger.Debug("failed to write close message", zap.Error(writeErr))
		}

		// Give the peer a chance to echo the close frame
		select {
		case <-c.done:
			return
		case <-time.After(defaultCloseGracePeriod):
		}

		err = c.conn.Close()
		if err != nil {
			err = errors.Wrap(err, "failed to close connection")
		}
	})
	return err
}

func (c *websocketChannel) readLoop() {
	defer func() {
		_ = c.conn.Close()
		close(c.done)
		close(c.events)
	}()

	c.conn.SetReadLimit(defaultMaxMessageSize)
	if c.pingPeriod > 0 {
		c.extendReadDeadline()
		c.conn.SetPongHandler(func(string) error {
			c.extendReadDeadline()
			return nil
		})
	}

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			c.events <- c.closeEvent(err)
			return
		}
		c.events <- Event{
			Kind:    EventMessage,
			Payload: payload,
		}
	}
}

func (c *websocketChannel) closeEvent(err error) Event {
	if c.closedLocally.Load() {
		return Event{Kind: EventClose, Code: CloseNormalClosure}
	}

	var closeErr *websocket.CloseError
	if errors.As(err, &closeErr) {
		c.logger.Debug("websocket closed",
			zap.Int("code", closeErr.Code),
			zap.String("reason", closeErr.Text))
		return Event{Kind: EventClose, Code: closeErr.Code, Reason: closeErr.Text}
	}

	c.logger.Warn("websocket read failed", zap.Error(err))
	c.events <- Event{Kind: EventError, Err: err}
	return Event{Kind: EventClose, Code: CloseAbnormalClosure, Reason: err.Error()}
}

func (c *websocketChannel) extendReadDeadline() {
	err := c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	if err != nil {
		c.logger.Debug("failed to set read deadline", zap.Error(err))
	}
}

func (c *websocketChannel) pingLoop() {
	ticker := time.NewTicker(c.pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			deadline := time.Now().Add(defaultWriteDeadline)
			err := c.conn.WriteControl(websocket.PingMessage, nil, deadline)
			if err != nil {
				c.logger.Debug("failed to send ping", zap.Error(err))
				return
			}
		}
	}
}
