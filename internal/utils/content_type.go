package utils

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const octetStream = "application/octet-stream"

// DetectContentType resolves a file's MIME type by extension, falling back to
// content sniffing for files without a known extension.
func DetectContentType(path string) string {
	if mimeType := mime.TypeByExtension(filepath.Ext(path)); mimeType != "" {
		return mimeType
	}

	if detected, err := mimetype.DetectFile(path); err == nil {
		return detected.String()
	}

	return octetStream
}

// IsImage reports whether the content type renders as an image.
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}

// FileExt returns the file extension without the leading dot, lowercased.
func FileExt(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
