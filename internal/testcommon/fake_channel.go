package testcommon

import (
	"encoding/json"
	"sync"

	"github.com/six78/gameroom-cli/internal/transport"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

// FakeChannel is an in-memory transport.Channel driven by the test.
type FakeChannel struct {
	mutex  sync.Mutex
	closed bool
	events chan transport.Event
	sent   chan []byte
}

func NewFakeChannel() *FakeChannel {
	return &FakeChannel{
		events: make(chan transport.Event, 100),
		sent:   make(chan []byte, 100),
	}
}

func (c *FakeChannel) Events() <-chan transport.Event {
	return c.events
}

func (c *FakeChannel) Send(payload []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.closed {
		return transport.ErrChannelClosed
	}
	c.sent <- payload
	return nil
}

func (c *FakeChannel) Close() error {
	c.finish(transport.Event{Kind: transport.EventClose, Code: transport.CloseNormalClosure})
	return nil
}

// Drop simulates the server closing the connection with the given code.
func (c *FakeChannel) Drop(code int) {
	c.finish(transport.Event{Kind: transport.EventClose, Code: code})
}

func (c *FakeChannel) Closed() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.closed
}

func (c *FakeChannel) ReceivePayload(payload []byte) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.closed {
		return
	}
	c.events <- transport.Event{Kind: transport.EventMessage, Payload: payload}
}

func (c *FakeChannel) Receive(message protocol.Message) {
	payload, err := json.Marshal(message)
	if err != nil {
		panic(err)
	}
	c.ReceivePayload(payload)
}

// Sent returns frames written by the client, in order.
func (c *FakeChannel) Sent() <-chan []byte {
	return c.sent
}

func (c *FakeChannel) finish(event transport.Event) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.events <- event
	close(c.events)
}
