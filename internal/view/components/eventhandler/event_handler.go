package eventhandler

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Convert turns a subscription event into the tea message it is delivered as.
type Convert[E any, M any] func(E) M

type listener[E any, M any] struct {
	events  <-chan E
	convert Convert[E, M]
}

// Model relays one subscription channel into the bubbletea loop, one
// event per command. The listener is shared between model copies and is
// dropped once the channel is closed.
type Model[E any, M any] struct {
	listener *listener[E, M]
}

func New[E any, M any](convert Convert[E, M]) Model[E, M] {
	return Model[E, M]{
		listener: &listener[E, M]{convert: convert},
	}
}

// Init starts listening and delivers current first, so the view does not
// wait for the next change to render the present state.
func (m Model[E, M]) Init(events <-chan E, current E) tea.Cmd {
	if m.listener == nil {
		return nil
	}
	m.listener.events = events
	first := m.listener.convert(current)
	return func() tea.Msg {
		return first
	}
}

func (m Model[E, M]) Update(msg tea.Msg) (Model[E, M], tea.Cmd) {
	if m.listener == nil || m.listener.events == nil {
		return m, nil
	}
	if _, ok := msg.(M); ok {
		return m, m.wait()
	}
	return m, nil
}

func (m Model[E, M]) Active() bool {
	return m.listener != nil && m.listener.events != nil
}

func (m Model[E, M]) wait() tea.Cmd {
	l := m.listener
	return func() tea.Msg {
		if l.events == nil {
			return nil
		}
		event, more := <-l.events
		if !more {
			l.events = nil
			return nil
		}
		return l.convert(event)
	}
}
