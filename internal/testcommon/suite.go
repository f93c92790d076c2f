package testcommon

import (
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/six78/gameroom-cli/internal/config"
	"github.com/six78/gameroom-cli/pkg/protocol"
)

type Suite struct {
	suite.Suite
	Logger *zap.Logger
}

func (s *Suite) SetupSuite() {
	s.Logger = SetupConfigLogger(s.T())
}

func (s *Suite) TearDownSuite() {
	_ = config.Logger.Sync()
}

func (s *Suite) SplitBatch(batch tea.Cmd) []tea.Cmd {
	s.Require().Equal(reflect.Func, reflect.TypeOf(batch).Kind())

	result := batch()
	s.Require().NotNil(result)

	batchMessage := result.(tea.BatchMsg)
	s.Require().NotNil(batchMessage)

	return batchMessage
}

// Message builds an inbound envelope the way the server does.
func (s *Suite) Message(messageType protocol.MessageType, data any) protocol.Message {
	message, err := protocol.NewMessage(messageType, data)
	s.Require().NoError(err)
	message.Timestamp = time.Now().UTC()
	return message
}

// RawMessage is a raw JSON data field for tests that need exact wire bytes.
func (s *Suite) RawMessage(messageType protocol.MessageType, data string) protocol.Message {
	message := protocol.Message{
		Type:      messageType,
		Timestamp: time.Now().UTC(),
	}
	if data != "" {
		message.Data = []byte(data)
	}
	return message
}
