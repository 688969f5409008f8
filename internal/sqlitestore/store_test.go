package sqlitestore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/gridstore/pkg/types"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestPutGetDelete(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put("db1", []byte(`{"a":1}`)))
	blob, err := s.Get("db1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), blob)

	// Upsert semantics.
	require.NoError(t, s.Put("db1", []byte(`{"a":2}`)))
	blob, err = s.Get("db1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), blob)

	require.NoError(t, s.Delete("db1"))
	_, err = s.Get("db1")
	assert.ErrorIs(t, err, types.ErrNotFound)
	assert.ErrorIs(t, s.Delete("db1"), types.ErrNotFound)
}

func TestList(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Put("b", []byte("2")))
	require.NoError(t, s.Put("a", []byte("1")))

	ids, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids)
}

func TestReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put("db1", []byte("persisted")))
	require.NoError(t, s.Close())

	s2, err := Open(dir)
	require.NoError(t, err)
	defer s2.Close()

	blob, err := s2.Get("db1")
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), blob)
}

func TestOpenCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := Open(dir)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close(), "close is idempotent")
}
