package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "koprumezun.demo", []byte(`{"viewerId":"u-demo"}`)))

	got, err := kv.Get(ctx, "koprumezun.demo")
	require.NoError(t, err)
	assert.JSONEq(t, `{"viewerId":"u-demo"}`, string(got))
}

func TestFileKVGetMissingKey(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	_, err = kv.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFileKVOverwrite(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "k", []byte(`1`)))
	require.NoError(t, kv.Set(ctx, "k", []byte(`2`)))

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`2`), got)
}

func TestFileKVDelete(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "k", []byte(`1`)))
	require.NoError(t, kv.Delete(ctx, "k"))

	_, err = kv.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	require.NoError(t, kv.Delete(ctx, "k"))
}

func TestFileKVSanitizesKeys(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(ctx, "../escape/attempt", []byte(`1`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "the value must land inside the base directory")
	assert.Equal(t, filepath.Base(entries[0].Name()), entries[0].Name())

	got, err := kv.Get(ctx, "../escape/attempt")
	require.NoError(t, err)
	assert.Equal(t, []byte(`1`), got)
}

func TestFileKVLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		require.NoError(t, kv.Set(ctx, "k", []byte(`{"n":1}`)))
	}

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestNewFileKVRequiresDir(t *testing.T) {
	_, err := NewFileKV("")
	assert.Error(t, err)
}
