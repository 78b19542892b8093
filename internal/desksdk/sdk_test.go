package desksdk

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSDK(t *testing.T, token string, handler http.HandlerFunc) *DeskSDK {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sdk, err := New(&Config{BaseURL: server.URL}, NewAuthContext(token, nil))
	require.NoError(t, err)
	t.Cleanup(sdk.Close)
	return sdk
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(&Config{}, nil)
	assert.ErrorIs(t, err, ErrNoServerURL)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var got string
	sdk := newTestSDK(t, "tok-123", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[]}`))
	})

	_, err := sdk.Companies.Media.List(context.Background(), "c-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", got)
}

func TestAnonymousRequestsOmitAuthorization(t *testing.T) {
	var got string
	sdk := newTestSDK(t, "", func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total":0,"page":1,"per_page":20}`))
	})

	_, err := sdk.Companies.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnauthorizedExpiresSession(t *testing.T) {
	sdk := newTestSDK(t, "stale-token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"E_ACCESS_DENIED","error":"token expired"}`))
	})

	_, err := sdk.Profiles.Me(context.Background())
	require.ErrorIs(t, err, ErrSessionExpired)

	assert.True(t, sdk.Auth().Expired())
	assert.Empty(t, sdk.Auth().Token())
}

func TestAPIErrorEnvelope(t *testing.T) {
	sdk := newTestSDK(t, "tok", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"code":"E_COMPANY_NOT_FOUND","error":"no such company"}`))
	})

	_, err := sdk.Companies.Get(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, CodeCompanyNotFound, apiErr.ErrorCode())
	assert.Equal(t, "no such company", apiErr.ErrorMessage())
	assert.Contains(t, err.Error(), "company get")
}

func TestAuthContextExpireFiresHookOnce(t *testing.T) {
	fired := 0
	auth := NewAuthContext("tok", func() { fired++ })

	auth.Expire()
	auth.Expire()

	assert.Equal(t, 1, fired)
	assert.True(t, auth.Expired())
	assert.Empty(t, auth.Token())
}

func TestAuthContextSetTokenRearms(t *testing.T) {
	fired := 0
	auth := NewAuthContext("old", func() { fired++ })

	auth.Expire()
	auth.SetToken("fresh")

	assert.False(t, auth.Expired())
	assert.Equal(t, "fresh", auth.Token())

	auth.Expire()
	assert.Equal(t, 2, fired, "a fresh token re-arms the expiry hook")
}
