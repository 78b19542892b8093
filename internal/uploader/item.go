package uploader

import (
	"fmt"
	"os"
	"time"

	"github.com/opencarbon/carbondesk/internal/utils"
)

type Status string

const (
	StatusQueued    Status = "queued"
	StatusUploading Status = "uploading"
	StatusDone      Status = "done"
	StatusError     Status = "error"
)

// Coarse progress milestones. The transport gives no byte-level progress for
// a presigned PUT, so items jump between these marks.
const (
	progressStarted     = 1
	progressTransferred = 80
	progressDone        = 100
)

// LocalFile describes a locally selected file.
type LocalFile struct {
	Path         string
	Name         string
	Size         int64
	LastModified time.Time
	ContentType  string
}

// Identity is the de-duplication key for queued files: name + size + mtime,
// never content hashing.
type Identity struct {
	Name         string
	Size         int64
	LastModified int64 // unix millis
}

func (f LocalFile) Identity() Identity {
	return Identity{
		Name:         f.Name,
		Size:         f.Size,
		LastModified: f.LastModified.UnixMilli(),
	}
}

// StatFile builds a LocalFile from a path on disk, detecting its content type.
func StatFile(path string) (LocalFile, error) {
	resolved, err := utils.ResolvePath(path)
	if err != nil {
		return LocalFile{}, err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return LocalFile{}, err
	}
	if info.IsDir() {
		return LocalFile{}, fmt.Errorf("%s is a directory", path)
	}

	return LocalFile{
		Path:         resolved,
		Name:         info.Name(),
		Size:         info.Size(),
		LastModified: info.ModTime(),
		ContentType:  utils.DetectContentType(resolved),
	}, nil
}

// UploadItem is one file pending upload. Items are owned by their queue;
// fields are guarded by the queue's lock, so read them via Queue.Snapshot.
type UploadItem struct {
	ID          string
	File        LocalFile
	Designation bool // this item should become the parent's cover/avatar
	Preview     *Preview
	Status      Status
	Progress    int
	Err         string
}
