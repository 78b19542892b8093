package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectContentType(t *testing.T) {
	assert.Contains(t, DetectContentType("photo.png"), "image/png")
	assert.Contains(t, DetectContentType("report.pdf"), "application/pdf")

	// no extension, sniffed from contents
	path := filepath.Join(t.TempDir(), "blob")
	err := os.WriteFile(path, []byte("\x89PNG\r\n\x1a\n"), 0o644)
	assert.NoError(t, err)
	assert.Contains(t, DetectContentType(path), "image/png")

	// unreadable and unknown
	assert.Equal(t, octetStream, DetectContentType(filepath.Join(t.TempDir(), "missing")))
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("image/png"))
	assert.True(t, IsImage("image/jpeg"))
	assert.False(t, IsImage("application/pdf"))
	assert.False(t, IsImage(""))
}

func TestFileExt(t *testing.T) {
	assert.Equal(t, "png", FileExt("Photo.PNG"))
	assert.Equal(t, "gz", FileExt("a.tar.gz")) // filepath.Ext keeps only the last part
	assert.Equal(t, "", FileExt("README"))
}
