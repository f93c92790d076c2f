package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrMalformedMessage = errors.New("malformed message")

func UnmarshalMessage(payload []byte) (*Message, error) {
	message := Message{}
	err := json.Unmarshal(payload, &message)
	if err != nil {
		return nil, errors.Wrap(ErrMalformedMessage, err.Error())
	}
	if message.Type == "" {
		return nil, errors.Wrap(ErrMalformedMessage, "missing message type")
	}
	return &message, nil
}

// NewMessage builds an envelope with data marshalled into it.
// A nil data produces an envelope without the data field.
func NewMessage(messageType MessageType, data any) (Message, error) {
	message := Message{Type: messageType}
	if data == nil {
		return message, nil
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return message, errors.Wrapf(err, "failed to marshal %s data", messageType)
	}
	message.Data = payload
	return message, nil
}

func (m *Message) DecodeData(target any) error {
	if len(m.Data) == 0 {
		return errors.Wrapf(ErrMalformedMessage, "%s message has no data", m.Type)
	}
	err := json.Unmarshal(m.Data, target)
	if err != nil {
		return errors.Wrap(ErrMalformedMessage, err.Error())
	}
	return nil
}
