package uploader

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

var (
	ErrNotBound     = errors.New("uploader: session has no parent record")
	ErrAlreadyBound = errors.New("uploader: session already bound to a parent")
)

// Session ties one screen's queues to the parent record lifecycle. In the
// create flow files accumulate locally with no network activity until the
// parent record exists; in the edit flow every enqueue triggers a drain
// attempt, debounced by each orchestrator's in-flight guard.
type Session struct {
	mu       sync.Mutex
	parentID string
	orchs    []*Orchestrator
}

func NewSession(orchs ...*Orchestrator) *Session {
	return &Session{orchs: orchs}
}

// Bind associates an already-existing parent (edit flow).
func (s *Session) Bind(parentID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parentID = parentID
}

// ParentID returns the bound parent id, or "".
func (s *Session) ParentID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parentID
}

// Bound reports whether a parent record exists for this session.
func (s *Session) Bound() bool {
	return s.ParentID() != ""
}

// CreateThenDrain runs the create flow: the parent record is created first,
// and only on success do the accumulated queues drain against the new id. If
// creation fails the queues are left untouched and nothing is uploaded.
func (s *Session) CreateThenDrain(ctx context.Context, create func(context.Context) (string, error)) error {
	if s.Bound() {
		return ErrAlreadyBound
	}

	parentID, err := create(ctx)
	if err != nil {
		return err
	}

	s.Bind(parentID)
	return s.DrainAll(ctx)
}

// NotifyEnqueued triggers an automatic drain in the edit flow. Unbound
// sessions accumulate quietly until the parent is created.
func (s *Session) NotifyEnqueued(ctx context.Context) error {
	if !s.Bound() {
		return nil
	}
	return s.DrainAll(ctx)
}

// DrainAll drains every queue. Queues are independent: they run in separate
// loops with no ordering between them, and one queue's refresh failure does
// not cancel the others.
func (s *Session) DrainAll(ctx context.Context) error {
	parentID := s.ParentID()
	if parentID == "" {
		return ErrNotBound
	}

	var g errgroup.Group
	for _, orch := range s.orchs {
		g.Go(func() error {
			_, err := orch.Drain(ctx, parentID)
			return err
		})
	}
	return g.Wait()
}

// Close tears down every queue, releasing all remaining previews.
func (s *Session) Close() error {
	var errs []error
	for _, orch := range s.orchs {
		if err := orch.Queue().Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
