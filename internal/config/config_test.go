package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := &Config{
		ServerURL: "https://api.example.org",
		Email:     "alice@example.org",
	}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.org", loaded.ServerURL)
	assert.Equal(t, "alice@example.org", loaded.Email)
	assert.Equal(t, path, loaded.Path)
	assert.Equal(t, DefaultTokenPath, loaded.TokenPath, "empty token path falls back to default")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestTokenStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.token")
	store := NewTokenStore(path)

	// no session yet
	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	require.NoError(t, store.Save("tok-123"))
	token, err = store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	require.NoError(t, store.Clear())
	token, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// clearing an already-clear store is fine
	require.NoError(t, store.Clear())
}
