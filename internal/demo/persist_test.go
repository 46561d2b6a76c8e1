package demo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/koprumezun/mezunhub/internal/app/models"
	"github.com/koprumezun/mezunhub/internal/storage"
)

func TestKVSinkRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	sink := NewKVSink(kv)

	state := PersistedState{
		ViewerID: "viewer-1",
		Posts:    []models.FeedPost{{ID: "p-1", Content: "hello"}},
		Groups:   []models.Group{{ID: "g-1", MemberCount: 5}},
	}
	require.NoError(t, sink.Save(state))

	restored, ok := Restore(ctx, kv)
	require.True(t, ok)
	assert.Equal(t, "viewer-1", restored.ViewerID)
	require.Len(t, restored.Posts, 1)
	assert.Equal(t, "hello", restored.Posts[0].Content)
	assert.Equal(t, 5, restored.Groups[0].MemberCount)
}

func TestRestoreEmptyBackend(t *testing.T) {
	_, ok := Restore(context.Background(), storage.NewMemoryKV())
	assert.False(t, ok)
}

func TestRestoreRejectsViewerlessState(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	sink := NewKVSink(kv)

	// A subset without a viewer identity is not worth restoring.
	require.NoError(t, sink.Save(PersistedState{Posts: []models.FeedPost{{ID: "p-1"}}}))

	_, ok := Restore(ctx, kv)
	assert.False(t, ok)
}

func TestClearDropsPersistedState(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()
	sink := NewKVSink(kv)

	require.NoError(t, sink.Save(PersistedState{ViewerID: "viewer-1"}))
	require.NoError(t, Clear(ctx, kv))

	_, ok := Restore(ctx, kv)
	assert.False(t, ok)
}

func TestStoreChangesReachTheBackend(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryKV()

	clock := NewVirtualClock(testStart)
	store := NewStore(Config{Clock: clock, Scheduler: clock, Sink: NewKVSink(kv)})
	store.Hydrate(Snapshot{
		ViewerID: "viewer-1",
		Groups:   []models.Group{testGroup("g-1")},
	})
	store.JoinGroup("g-1")

	restored, ok := Restore(ctx, kv)
	require.True(t, ok)
	assert.Equal(t, models.MembershipMember, restored.Groups[0].MembershipStatus)
	assert.Equal(t, 11, restored.Groups[0].MemberCount)
}
