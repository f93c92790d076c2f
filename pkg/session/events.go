package session

import "sync"

type EventTag int

const (
	EventStateChanged EventTag = iota
	EventScreenChanged
	EventServerError
)

type Event struct {
	Tag  EventTag
	Data interface{}
}

type Subscription struct {
	Events chan Event
}

type EventManager struct {
	mutex         sync.Mutex
	subscriptions []*Subscription
}

func NewEventManager() *EventManager {
	return &EventManager{
		subscriptions: make([]*Subscription, 0, 1),
	}
}

// Send never blocks. A subscriber that fell behind misses the event
// and catches up on the next one.
func (m *EventManager) Send(event Event) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, sub := range m.subscriptions {
		select {
		case sub.Events <- event:
		default:
		}
	}
}

func (m *EventManager) Subscribe() *Subscription {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	subscription := &Subscription{
		Events: make(chan Event, 10),
	}
	m.subscriptions = append(m.subscriptions, subscription)
	return subscription
}

func (m *EventManager) Count() int {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.subscriptions)
}

func (m *EventManager) Close() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	for _, sub := range m.subscriptions {
		close(sub.Events)
	}
	m.subscriptions = nil
}
