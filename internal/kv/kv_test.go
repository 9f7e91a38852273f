package kv

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openAll(t *testing.T) map[string]Store {
	t.Helper()
	ctx := context.Background()
	stores := make(map[string]Store)

	for _, backend := range Backends() {
		s, err := Open(ctx, backend, filepath.Join(t.TempDir(), backend))
		require.NoError(t, err, backend)
		t.Cleanup(func() { _ = s.Close() })
		stores[backend] = s
	}
	return stores
}

func TestStore_GetMissingKey(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			v, ok, err := s.Get(context.Background(), "crop_entries")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestStore_SetGetOverwrite(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			require.NoError(t, s.Set(ctx, "custom_tasks", `["Mulching"]`))
			require.NoError(t, s.Set(ctx, "custom_tasks", `["Ψεκασμός χαλκού"]`))

			v, ok, err := s.Get(ctx, "custom_tasks")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `["Ψεκασμός χαλκού"]`, v)
		})
	}
}

func TestStore_EmptyValueIsPresent(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "language", ""))

			v, ok, err := s.Get(ctx, "language")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Empty(t, v)
		})
	}
}

func TestStore_Remove(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, s.Set(ctx, "crop_entries.bak.1", "[]"))
			require.NoError(t, s.Remove(ctx, "crop_entries.bak.1"))
			require.NoError(t, s.Remove(ctx, "crop_entries.bak.1"), "removing an absent key is not an error")

			_, ok, err := s.Get(ctx, "crop_entries.bak.1")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestStore_RejectsInvalidKeys(t *testing.T) {
	for name, s := range openAll(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, key := range []string{"", "..", "../etc/passwd", "a/b", "with space"} {
				err := s.Set(ctx, key, "x")
				assert.True(t, errors.Is(err, ErrInvalidKey), "key %q: %v", key, err)
			}
		})
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	_, err := Open(context.Background(), "redis", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestFileStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenFile(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "crop_entries", "[]"))

	_, err = os.Stat(filepath.Join(dir, "crop_entries.json"))
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, matches, "temp files must not be left behind")

	reopened, err := OpenFile(dir)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, "crop_entries")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestSQLiteStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "language", "en"))
	require.NoError(t, s.Close())

	// Migrations are idempotent on an already migrated database.
	reopened, err := OpenSQLite(ctx, dir)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "language")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "en", v)
}

func TestBoltStore_PersistsAcrossOpens(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenBolt(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "custom_plants", "[]"))
	require.NoError(t, s.Close())

	reopened, err := OpenBolt(dir)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok, err := reopened.Get(ctx, "custom_plants")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", v)
}

func TestMemoryStore_Closed(t *testing.T) {
	s := NewMemory()
	require.NoError(t, s.Close())

	err := s.Set(context.Background(), "k", "v")
	assert.ErrorIs(t, err, ErrClosed)
}
