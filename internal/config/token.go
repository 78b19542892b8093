package config

import (
	"errors"
	"os"
	"strings"

	"github.com/gofrs/flock"
	"github.com/opencarbon/carbondesk/internal/utils"
)

var ErrTokenLocked = errors.New("config: session token locked by another process")

// TokenStore persists the opaque bearer token between CLI invocations. Writes
// take a file lock so two concurrent invocations can't interleave a sign-in
// with a sign-out.
type TokenStore struct {
	path  string
	flock *flock.Flock
}

func NewTokenStore(path string) *TokenStore {
	return &TokenStore{
		path:  path,
		flock: flock.New(path + ".lock"),
	}
}

// Load reads the stored token. A missing file means no session.
func (t *TokenStore) Load() (string, error) {
	data, err := os.ReadFile(t.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes a fresh token under the lock.
func (t *TokenStore) Save(token string) error {
	if err := utils.EnsureParent(t.path); err != nil {
		return err
	}

	locked, err := t.flock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return ErrTokenLocked
	}
	defer t.flock.Unlock()

	return os.WriteFile(t.path, []byte(token+"\n"), 0o600)
}

// Clear discards the stored token. Used on sign-out and on session expiry.
func (t *TokenStore) Clear() error {
	locked, err := t.flock.TryLock()
	if err != nil {
		return err
	}
	if !locked {
		return ErrTokenLocked
	}
	defer t.flock.Unlock()

	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
