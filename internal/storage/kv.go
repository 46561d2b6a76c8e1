// Package storage provides the durable key-value persistence layer used by the
// demo and settings stores. Values are JSON blobs keyed by name; the versioned
// envelope helpers in envelope.go sit on top of the raw KV interface.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
var ErrKeyNotFound = errors.New("storage: key not found")

// KV is a minimal durable key-value store.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
