package matchers

import (
	"fmt"
	"testing"

	"github.com/six78/gameroom-cli/pkg/protocol"
)

// MessageMatcher matches an outbound frame of the given type.
// Matched messages can be awaited with Wait.
type MessageMatcher struct {
	Matcher
	messageType protocol.MessageType
}

func NewMessageMatcher(t *testing.T, messageType protocol.MessageType) *MessageMatcher {
	return &MessageMatcher{
		Matcher:     *NewMatcher(t),
		messageType: messageType,
	}
}

func (m *MessageMatcher) Matches(x interface{}) bool {
	payload, ok := x.([]byte)
	if !ok || payload == nil {
		return false
	}

	message, err := protocol.UnmarshalMessage(payload)
	if err != nil {
		return false
	}

	if message.Type != m.messageType {
		return false
	}

	m.triggered <- message
	return true
}

func (m *MessageMatcher) String() string {
	return fmt.Sprintf("is %s message", m.messageType)
}

func (m *MessageMatcher) WaitMessage() *protocol.Message {
	result := m.Wait()
	if result == nil {
		return nil
	}
	return result.(*protocol.Message)
}
