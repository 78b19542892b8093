package uploader

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/opencarbon/carbondesk/internal/desksdk"
	"github.com/opencarbon/carbondesk/internal/utils"
)

// Service is the slice of the directory API one orchestrator drives.
// *desksdk.AttachmentAPI implements it for every {entity, collection} pair.
type Service interface {
	Kind() string
	UploadURL(ctx context.Context, parentID string, params *desksdk.UploadURLParams) (*desksdk.UploadURLResponse, error)
	Register(ctx context.Context, parentID string, params *desksdk.RegisterParams) (*desksdk.AttachmentRecord, error)
	SetCover(ctx context.Context, parentID string, recordID string) error
	List(ctx context.Context, parentID string) ([]*desksdk.AttachmentRecord, error)
}

// TransferFunc PUTs a local file's bytes to a presigned target.
type TransferFunc func(ctx context.Context, url string, contentType string, path string) error

// Orchestrator drains one upload queue against one attachment collection.
// Items are processed strictly in queue order, one at a time; a failure on
// one item never stops the rest of the pass.
type Orchestrator struct {
	queue    *Queue
	svc      Service
	transfer TransferFunc
	draining atomic.Bool
}

func NewOrchestrator(queue *Queue, svc Service) *Orchestrator {
	return &Orchestrator{
		queue:    queue,
		svc:      svc,
		transfer: desksdk.TransferPresigned,
	}
}

// Queue returns the orchestrator's queue.
func (o *Orchestrator) Queue() *Queue {
	return o.queue
}

// Draining reports whether a drain pass is currently running.
func (o *Orchestrator) Draining() bool {
	return o.draining.Load()
}

// Drain processes every queued or errored item in queue order. Per-item
// failures are recorded on the item and never abort the pass; each item is
// attempted at most once per pass. When the pass completes the authoritative
// attachment list is refetched (local state is advisory only) and done items
// are pruned, leaving errored items visible for retry.
//
// A drain already in progress makes re-entrant calls no-ops returning
// (nil, nil); the running pass picks up items enqueued meanwhile.
func (o *Orchestrator) Drain(ctx context.Context, parentID string) ([]*desksdk.AttachmentRecord, error) {
	if !o.draining.CompareAndSwap(false, true) {
		return nil, nil
	}
	defer o.draining.Store(false)

	attempted := make(map[string]bool)
	for {
		id, ok := o.queue.nextEligibleID(attempted)
		if !ok {
			break
		}
		attempted[id] = true
		o.processItem(ctx, parentID, id)
	}

	records, err := o.svc.List(ctx, parentID)
	if err != nil {
		return nil, fmt.Errorf("refresh attachments: %w", err)
	}
	o.queue.PruneDone()

	return records, nil
}

func (o *Orchestrator) processItem(ctx context.Context, parentID string, id string) {
	item, ok := o.queue.beginUpload(id)
	if !ok {
		return
	}

	target, err := o.svc.UploadURL(ctx, parentID, &desksdk.UploadURLParams{
		FileExt:     utils.FileExt(item.File.Name),
		ContentType: item.File.ContentType,
	})
	if err != nil {
		o.failItem(id, item, "upload url", err)
		return
	}

	if err := o.transfer(ctx, target.UploadURL, item.File.ContentType, item.File.Path); err != nil {
		o.failItem(id, item, "transfer", err)
		return
	}
	o.queue.setProgress(id, progressTransferred)

	record, err := o.svc.Register(ctx, parentID, &desksdk.RegisterParams{
		S3Key:        target.S3Key,
		ContentType:  item.File.ContentType,
		Kind:         o.svc.Kind(),
		OriginalName: item.File.Name,
		Size:         item.File.Size,
		IsCover:      false,
	})
	if err != nil {
		o.failItem(id, item, "register", err)
		return
	}

	if item.Designation && record != nil && record.ID != "" {
		if err := o.svc.SetCover(ctx, parentID, record.ID); err != nil {
			// partial success: the object is stored and registered
			o.queue.fail(id, fmt.Sprintf("uploaded, but failed to set cover: %v", err))
			slog.Warn("drain", "op", "set-cover", "file", item.File.Name, "error", err)
			return
		}
	}

	o.queue.finish(id)
	slog.Info("drain", "op", "uploaded", "file", item.File.Name, "parent", parentID)
}

func (o *Orchestrator) failItem(id string, item UploadItem, step string, err error) {
	o.queue.fail(id, fmt.Sprintf("%s: %v", step, err))
	slog.Error("drain", "op", step, "file", item.File.Name, "error", err)
}
