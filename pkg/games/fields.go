package games

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

type snapshotFields map[string]json.RawMessage

func parseSnapshot(payload json.RawMessage, logger *zap.Logger) snapshotFields {
	fields := snapshotFields{}
	err := json.Unmarshal(payload, &fields)
	if err != nil {
		logger.Warn("ignoring malformed snapshot", zap.Error(err))
		return nil
	}
	return fields
}

// mergeField decodes field name into target. target is only written
// when the field is present, not null and well-formed.
func mergeField[T any](fields snapshotFields, name string, target *T, logger *zap.Logger) bool {
	return mergeValidField(fields, name, target, nil, logger)
}

func mergeValidField[T any](fields snapshotFields, name string, target *T, valid func(T) bool, logger *zap.Logger) bool {
	raw, ok := fields[name]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return false
	}

	var value T
	err := json.Unmarshal(raw, &value)
	if err != nil {
		logger.Warn("ignoring malformed snapshot field",
			zap.String("field", name),
			zap.Error(err))
		return false
	}

	if valid != nil && !valid(value) {
		logger.Warn("ignoring invalid snapshot field", zap.String("field", name))
		return false
	}

	*target = value
	return true
}

// unknownFields keeps the fields a variant does not model yet.
func unknownFields(fields snapshotFields, known ...string) map[string]json.RawMessage {
	var extra map[string]json.RawMessage
	for name, raw := range fields {
		if slices.Contains(known, name) {
			continue
		}
		if extra == nil {
			extra = make(map[string]json.RawMessage)
		}
		extra[name] = raw
	}
	return extra
}
