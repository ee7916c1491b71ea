package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSRefreshTokenStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "refresh_token.txt")
	store := NewFSRefreshTokenStore(path)

	require.NoError(t, store.Save("1//0abc"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1//0abc", string(raw))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "1//0abc", loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFSRefreshTokenStoreOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refresh_token.txt")
	require.NoError(t, os.WriteFile(path, []byte("an-older-and-much-longer-token"), 0644))

	store := NewFSRefreshTokenStore(path)
	require.NoError(t, store.Save("1//new"))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "1//new", loaded)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFSRefreshTokenStoreRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refresh_token.txt")
	store := NewFSRefreshTokenStore(path)

	assert.ErrorIs(t, store.Save(""), ErrEmptyRefreshToken)
	assert.False(t, FileExists(path))
}

func TestFSRefreshTokenStoreLoadMissing(t *testing.T) {
	store := NewFSRefreshTokenStore(filepath.Join(t.TempDir(), "absent.txt"))

	_, err := store.Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestNewFSRefreshTokenStoreDefaultsPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	store := NewFSRefreshTokenStore("")
	assert.Equal(t, filepath.Join("/tmp/xdg", "planning", "refresh_token.txt"), store.Location())
}
