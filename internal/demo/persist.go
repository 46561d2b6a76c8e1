package demo

import (
	"context"

	"github.com/koprumezun/mezunhub/internal/storage"
)

// DemoStoreKey is the storage key the demo state is persisted under.
const DemoStoreKey = "koprumezun.demo"

// KVSink persists the demo subset into a key-value backend, wrapped in the
// versioned envelope.
type KVSink struct {
	kv  storage.KV
	key string
}

// NewKVSink builds a sink writing under the default demo key.
func NewKVSink(kv storage.KV) *KVSink {
	return &KVSink{kv: kv, key: DemoStoreKey}
}

func (s *KVSink) Save(state PersistedState) error {
	return storage.WritePersisted(context.Background(), s.kv, s.key, state)
}

// Restore reads the persisted subset back out. The boolean is false when
// nothing usable was stored, including after a version bump.
func Restore(ctx context.Context, kv storage.KV) (PersistedState, bool) {
	state := storage.ReadPersisted(ctx, kv, DemoStoreKey, PersistedState{})
	if state.ViewerID == "" {
		return PersistedState{}, false
	}
	return state, true
}

// Clear drops the persisted demo state entirely.
func Clear(ctx context.Context, kv storage.KV) error {
	return storage.RemovePersisted(ctx, kv, DemoStoreKey)
}
