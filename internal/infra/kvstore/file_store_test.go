package kvstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_GetBeforeFirstWrite(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "state", "test.json"))

	_, ok, err := store.Get(context.Background(), "lastHouseLocation")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_SetThenGet(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "state", "test.json"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "lastHouseLocation", `{"zoom":13}`))

	value, ok, err := store.Get(ctx, "lastHouseLocation")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"zoom":13}`, value)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	ctx := context.Background()

	first := NewFileStore(path)
	require.NoError(t, first.Set(ctx, "a", "1"))
	require.NoError(t, first.Set(ctx, "b", "2"))

	second := NewFileStore(path)
	value, ok, err := second.Get(ctx, "b")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "2", value)
}

func TestFileStore_OverwriteReplacesValue(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "test.json"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", "old"))
	require.NoError(t, store.Set(ctx, "k", "new"))

	value, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "new", value)
}

func TestFileStore_CorruptedFileFailsLoudly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	store := NewFileStore(path)
	_, _, err := store.Get(context.Background(), "k")
	require.Error(t, err)
}
