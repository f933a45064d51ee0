package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	require.Empty(t, s.Token())

	require.NoError(t, s.SetToken("tok-1"))
	require.Equal(t, "tok-1", s.Token())

	require.NoError(t, s.Clear())
	require.Empty(t, s.Token())
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session", "token")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.Empty(t, s.Token())

	require.NoError(t, s.SetToken("tok-1"))
	require.Equal(t, "tok-1", s.Token())

	// a fresh instance reloads the same token
	s2, err := NewFileStore(path)
	require.NoError(t, err)
	require.Equal(t, "tok-1", s2.Token())
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetToken("tok-1"))
	require.NoError(t, s.Clear())
	require.Empty(t, s.Token())

	// clearing an already-cleared store is fine
	require.NoError(t, s.Clear())

	s2, err := NewFileStore(path)
	require.NoError(t, err)
	require.Empty(t, s2.Token())
}
