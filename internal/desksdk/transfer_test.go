package desksdk

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferPresigned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.jpg")
	require.NoError(t, os.WriteFile(path, []byte("jpeg bytes here"), 0o644))

	var (
		method        string
		contentType   string
		contentLength string
		auth          string
		body          []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		contentType = r.Header.Get("Content-Type")
		contentLength = r.Header.Get("Content-Length")
		auth = r.Header.Get("Authorization")
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := TransferPresigned(context.Background(), server.URL, "image/jpeg", path)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, strconv.Itoa(len("jpeg bytes here")), contentLength)
	assert.Empty(t, auth, "signed URLs must not carry an Authorization header")
	assert.Equal(t, "jpeg bytes here", string(body))
}

func TestTransferPresignedDefaultContentType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	var contentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
	}))
	defer server.Close()

	require.NoError(t, TransferPresigned(context.Background(), server.URL, "", path))
	assert.Equal(t, "application/octet-stream", contentType)
}

func TestTransferPresignedRejectedByStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	err := TransferPresigned(context.Background(), server.URL, "image/png", path)
	assert.ErrorContains(t, err, "storage put failed")
}

func TestTransferPresignedMissingFile(t *testing.T) {
	err := TransferPresigned(context.Background(), "http://unused.invalid", "image/png",
		filepath.Join(t.TempDir(), "gone.png"))
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestTransferPresignedCancelledContext(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := TransferPresigned(ctx, server.URL, "image/png", path)
	assert.Error(t, err)
}
