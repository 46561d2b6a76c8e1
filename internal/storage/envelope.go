package storage

import (
	"context"
	"encoding/json"
)

// Version is the current persisted-value schema version. Bumping it
// invalidates previously stored data outright; there is no migration path.
const Version = 1

// envelope wraps every persisted value. Data stays raw so a version mismatch
// can be detected without decoding the payload.
type envelope struct {
	Version int             `json:"version"`
	Data    json.RawMessage `json:"data"`
}

// ReadPersisted reads and unwraps the value stored under key. The fallback is
// returned when the key is missing, the stored JSON is corrupt, or the
// envelope version differs from the current constant. A raw value that does
// not match the envelope shape is treated as a legacy unwrapped value and
// decoded as-is; that path is best-effort backward compatibility.
func ReadPersisted[T any](ctx context.Context, kv KV, key string, fallback T) T {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		return fallback
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		if env.Version != Version {
			return fallback
		}
		var value T
		if err := json.Unmarshal(env.Data, &value); err != nil {
			return fallback
		}
		return value
	}

	// Legacy unwrapped value from before versioning.
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// WritePersisted wraps data in the version envelope and stores it under key.
func WritePersisted[T any](ctx context.Context, kv KV, key string, data T) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	wrapped, err := json.Marshal(envelope{Version: Version, Data: payload})
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, wrapped)
}

// RemovePersisted drops the value stored under key.
func RemovePersisted(ctx context.Context, kv KV, key string) error {
	return kv.Delete(ctx, key)
}
