package uploader

import (
	"errors"
	"io"
	"os"
	"sync"
)

var ErrPreviewReleased = errors.New("uploader: preview already released")

// Preview is a local-only renderable handle on an image file's bytes. It is
// materialized at enqueue time for image MIME types only and holds an open
// file descriptor until released. Release must happen exactly once, when the
// item leaves the queue or the queue is torn down; anything else is a leak
// or a use-after-release defect.
type Preview struct {
	mu       sync.Mutex
	f        *os.File
	released bool
}

func newPreview(path string) (*Preview, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Preview{f: f}, nil
}

// Open rewinds the handle and returns a reader over the preview bytes.
func (p *Preview) Open() (io.Reader, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.released {
		return nil, ErrPreviewReleased
	}
	if _, err := p.f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return p.f, nil
}

// Release closes the handle. A second call is a defect and returns an error.
func (p *Preview) Release() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.released {
		return ErrPreviewReleased
	}
	p.released = true
	return p.f.Close()
}

// Released reports whether the handle has been released.
func (p *Preview) Released() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}
