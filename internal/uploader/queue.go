package uploader

import (
	"errors"
	"log/slog"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"github.com/opencarbon/carbondesk/internal/utils"
)

var (
	ErrQueueClosed   = errors.New("uploader: queue closed")
	ErrItemNotFound  = errors.New("uploader: item not found")
	ErrItemUploading = errors.New("uploader: item is uploading")
)

// QueueConfig controls one upload queue.
type QueueConfig struct {
	// MaxAttachments is the configured maximum per parent, counting records
	// already persisted server-side.
	MaxAttachments int

	// FirstFileCover designates the first queued image when the queue holds
	// no designee yet. Company and project media screens behave this way;
	// document queues and profile media do not.
	FirstFileCover bool
}

// Queue is an ordered collection of upload items: append-only at the tail,
// removal by id. A single screen owns each queue; the mutex exists so an
// orchestrator drain loop can run alongside the owner's reads.
type Queue struct {
	mu     sync.Mutex
	cfg    QueueConfig
	items  []*UploadItem
	closed bool
}

func NewQueue(cfg QueueConfig) *Queue {
	return &Queue{cfg: cfg}
}

// Remaining computes the free attachment slots given the count of records
// already persisted server-side. Every non-done item counts against it.
func (q *Queue) Remaining(persisted int) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.remainingLocked(persisted)
}

func (q *Queue) remainingLocked(persisted int) int {
	inflight := 0
	for _, it := range q.items {
		if it.Status != StatusDone {
			inflight++
		}
	}
	remaining := q.cfg.MaxAttachments - persisted - inflight
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}

// Identities returns the de-dup keys of every item, regardless of status.
func (q *Queue) Identities() mapset.Set[Identity] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.identitiesLocked()
}

func (q *Queue) identitiesLocked() mapset.Set[Identity] {
	set := mapset.NewSet[Identity]()
	for _, it := range q.items {
		set.Add(it.File.Identity())
	}
	return set
}

// Enqueue validates the selection against the queue's quota and contents,
// then appends the accepted files as queued items. Validation and append
// happen under one lock so the quota invariant holds at return. Image files
// get a preview handle; previews are advisory, so a file that cannot be
// opened still queues without one.
func (q *Queue) Enqueue(files []LocalFile, persisted int) (Partitioned, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return Partitioned{}, ErrQueueClosed
	}
	if len(files) == 0 {
		return Partitioned{}, nil
	}

	part := Partition(files, q.identitiesLocked(), q.remainingLocked(persisted))

	for _, f := range part.Accepted {
		item := &UploadItem{
			ID:     uuid.NewString(),
			File:   f,
			Status: StatusQueued,
		}
		if utils.IsImage(f.ContentType) {
			if preview, err := newPreview(f.Path); err == nil {
				item.Preview = preview
			} else {
				slog.Warn("preview open", "file", f.Name, "error", err)
			}
			if q.cfg.FirstFileCover && !q.hasDesigneeLocked() {
				item.Designation = true
			}
		}
		q.items = append(q.items, item)
	}

	return part, nil
}

func (q *Queue) hasDesigneeLocked() bool {
	for _, it := range q.items {
		if it.Designation {
			return true
		}
	}
	return false
}

// SetDesignation marks the item as the queue's sole designee, clearing the
// flag on every other item. Idempotent for the same id.
func (q *Queue) SetDesignation(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	found := false
	for _, it := range q.items {
		if it.ID == id {
			found = true
			break
		}
	}
	if !found {
		return ErrItemNotFound
	}

	for _, it := range q.items {
		it.Designation = it.ID == id
	}
	return nil
}

// Remove deletes an item and releases its preview. Items cannot be removed
// mid-upload; wait for the drain to finish with them first.
func (q *Queue) Remove(id string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, it := range q.items {
		if it.ID != id {
			continue
		}
		if it.Status == StatusUploading {
			return ErrItemUploading
		}
		q.items = append(q.items[:i], q.items[i+1:]...)
		return releasePreview(it)
	}
	return ErrItemNotFound
}

// PruneDone removes every done item, releasing previews. Called after a
// successful drain-and-refresh cycle; error items stay visible for retry.
func (q *Queue) PruneDone() {
	q.mu.Lock()
	defer q.mu.Unlock()

	kept := q.items[:0]
	for _, it := range q.items {
		if it.Status != StatusDone {
			kept = append(kept, it)
			continue
		}
		if err := releasePreview(it); err != nil {
			slog.Warn("preview release", "file", it.File.Name, "error", err)
		}
	}
	// clear trailing slots so pruned items are collectable
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
}

// Close tears the queue down, releasing every remaining preview. Further
// enqueues fail with ErrQueueClosed.
func (q *Queue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	q.closed = true

	var errs []error
	for _, it := range q.items {
		if err := releasePreview(it); err != nil {
			errs = append(errs, err)
		}
	}
	q.items = nil
	return errors.Join(errs...)
}

// Snapshot returns copies of the items in queue order.
func (q *Queue) Snapshot() []UploadItem {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]UploadItem, 0, len(q.items))
	for _, it := range q.items {
		out = append(out, *it)
	}
	return out
}

// Len returns the number of items currently in the queue.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func releasePreview(it *UploadItem) error {
	if it.Preview == nil {
		return nil
	}
	return it.Preview.Release()
}

// --- mutations owned by the drain loop ---

// nextEligibleID returns the first queued or errored item not in skip.
func (q *Queue) nextEligibleID(skip map[string]bool) (string, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, it := range q.items {
		if skip[it.ID] {
			continue
		}
		if it.Status == StatusQueued || it.Status == StatusError {
			return it.ID, true
		}
	}
	return "", false
}

// beginUpload transitions an item to uploading and returns a copy of it.
func (q *Queue) beginUpload(id string) (UploadItem, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, it := range q.items {
		if it.ID == id {
			it.Status = StatusUploading
			it.Progress = progressStarted
			it.Err = ""
			return *it, true
		}
	}
	return UploadItem{}, false
}

func (q *Queue) setProgress(id string, progress int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, it := range q.items {
		if it.ID == id {
			it.Progress = progress
			return
		}
	}
}

func (q *Queue) fail(id string, msg string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, it := range q.items {
		if it.ID == id {
			it.Status = StatusError
			it.Err = msg
			return
		}
	}
}

func (q *Queue) finish(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, it := range q.items {
		if it.ID == id {
			it.Status = StatusDone
			it.Progress = progressDone
			it.Err = ""
			return
		}
	}
}
