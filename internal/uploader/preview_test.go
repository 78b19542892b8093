package uploader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestPreviewOpenAndRelease(t *testing.T) {
	path := writeTempFile(t, "pic.png", []byte("fake image bytes"))

	preview, err := newPreview(path)
	require.NoError(t, err)
	assert.False(t, preview.Released())

	reader, err := preview.Open()
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	// opening again rewinds
	reader, err = preview.Open()
	require.NoError(t, err)
	data, err = io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))

	require.NoError(t, preview.Release())
	assert.True(t, preview.Released())
}

func TestPreviewReleaseExactlyOnce(t *testing.T) {
	path := writeTempFile(t, "pic.png", []byte("x"))

	preview, err := newPreview(path)
	require.NoError(t, err)

	require.NoError(t, preview.Release())
	assert.ErrorIs(t, preview.Release(), ErrPreviewReleased)

	_, err = preview.Open()
	assert.ErrorIs(t, err, ErrPreviewReleased)
}

func TestPreviewMissingFile(t *testing.T) {
	_, err := newPreview(filepath.Join(t.TempDir(), "absent.png"))
	assert.Error(t, err)
}
