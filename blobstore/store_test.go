package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	store.Put("a.txt", []byte("1,2\n"))

	rc, err := store.Open(context.Background(), "a.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", string(data))
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Open(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreIsolation(t *testing.T) {
	store := NewMemoryStore()
	payload := []byte("1,2\n")
	store.Put("a.txt", payload)
	payload[0] = 'X'

	rc, err := store.Open(context.Background(), "a.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", string(data))
}

func TestLocalStore(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("1,2\n"), 0o644))

	store := NewLocalStore(dir)

	rc, err := store.Open(context.Background(), "a.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n", string(data))

	_, err = store.Open(context.Background(), "missing.txt")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestWithRateLimitPassthrough(t *testing.T) {
	store := NewMemoryStore()
	assert.Same(t, Store(store), WithRateLimit(store, 0))
}

func TestWithRateLimitReads(t *testing.T) {
	store := NewMemoryStore()
	store.Put("a.txt", []byte("1,2\n3,4\n"))

	limited := WithRateLimit(store, 1<<20)
	rc, err := limited.Open(context.Background(), "a.txt")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "1,2\n3,4\n", string(data))
}

func TestWithRateLimitCancel(t *testing.T) {
	store := NewMemoryStore()
	store.Put("a.txt", make([]byte, 64))

	// 1 byte/s cannot serve 64 bytes before the deadline.
	limited := WithRateLimit(store, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	rc, err := limited.Open(ctx, "a.txt")
	require.NoError(t, err)
	defer rc.Close()

	_, err = io.ReadAll(rc)
	assert.Error(t, err)
}
