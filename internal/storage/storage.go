package storage

import (
	"encoding/json"
	"fmt"
)

// Store persists one JSON record per namespace key. Both the session context
// and the cart write through it after every mutation.
type Store interface {
	// Load decodes the record for key into v. It reports false when no
	// usable record exists, without error, so callers start fresh.
	Load(key string, v any) (bool, error)
	// Save replaces the record for key.
	Save(key string, v any) error
}

// schemaVersion tags every stored record. A record with a different version
// (or an unreadable shape) is discarded on load instead of being trusted.
const schemaVersion = 1

type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

func encode(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal record: %w", err)
	}
	raw, err := json.Marshal(envelope{Version: schemaVersion, Data: data})
	if err != nil {
		return nil, fmt.Errorf("marshal envelope: %w", err)
	}
	return raw, nil
}

// decode reports false for anything that is not a current-version envelope
// with a decodable payload.
func decode(raw []byte, v any) bool {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return false
	}
	if env.Version != schemaVersion || len(env.Data) == 0 {
		return false
	}
	return json.Unmarshal(env.Data, v) == nil
}
