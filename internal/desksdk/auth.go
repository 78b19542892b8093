package desksdk

import (
	"sync"
)

// AuthContext carries the bearer token for API calls. The token is opaque to
// the SDK; a 401 from the API is the only signal that it is no longer valid.
// When that happens the token is discarded and the OnExpired hook fires once,
// so the owner can clear stored credentials and prompt for a fresh sign-in.
type AuthContext struct {
	mu        sync.Mutex
	token     string
	expired   bool
	onExpired func()
}

func NewAuthContext(token string, onExpired func()) *AuthContext {
	return &AuthContext{
		token:     token,
		onExpired: onExpired,
	}
}

// Token returns the current bearer token, or "" for anonymous access.
func (a *AuthContext) Token() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.token
}

// SetToken installs a fresh token and re-arms the expiry hook.
func (a *AuthContext) SetToken(token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = token
	a.expired = false
}

// Expired reports whether the session was invalidated by the API.
func (a *AuthContext) Expired() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.expired
}

// Expire discards the token and fires the OnExpired hook. Safe to call more
// than once; the hook fires only on the first transition.
func (a *AuthContext) Expire() {
	a.mu.Lock()
	if a.expired {
		a.mu.Unlock()
		return
	}
	a.expired = true
	a.token = ""
	hook := a.onExpired
	a.mu.Unlock()

	if hook != nil {
		hook()
	}
}
