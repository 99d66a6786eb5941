package blobstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PutOpen(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data := []byte{1, 2, 3, 4}
	require.NoError(t, store.Put(ctx, "points.bin", bytes.NewReader(data), int64(len(data))))

	rc, err := store.Open(ctx, "points.bin")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestMemoryStore_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Open(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}

func TestMemoryStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Put(ctx, "a", bytes.NewReader([]byte("old")), 3))
	require.NoError(t, store.Put(ctx, "a", bytes.NewReader([]byte("new")), 3))

	rc, err := store.Open(ctx, "a")
	require.NoError(t, err)
	defer rc.Close()

	got, _ := io.ReadAll(rc)
	assert.Equal(t, []byte("new"), got)
	assert.Equal(t, 1, store.Len())
}

func TestLocalStore_PutOpen(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	store := NewLocalStore(root)

	data := []byte{9, 8, 7}
	require.NoError(t, store.Put(ctx, "sub/points.bin", bytes.NewReader(data), int64(len(data))))

	rc, err := store.Open(ctx, "sub/points.bin")
	require.NoError(t, err)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// No temp files left behind.
	entries, err := os.ReadDir(filepath.Join(root, "sub"))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLocalStore_OpenMissing(t *testing.T) {
	store := NewLocalStore(t.TempDir())

	_, err := store.Open(context.Background(), "missing.bin")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)
}
