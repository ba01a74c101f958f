package orchestration

import (
	"context"
	"sync"
	"time"

	"github.com/agbru/partviz/internal/viz"
)

// turnstile hands a single turn round-robin among runs. A run holding the
// turn keeps it until its next suspension point, passes it to the next run
// still active, and waits for it to come back.
type turnstile struct {
	mu     sync.Mutex
	wake   []chan struct{}
	active []bool
}

func newTurnstile(n int) *turnstile {
	ts := &turnstile{
		wake:   make([]chan struct{}, n),
		active: make([]bool, n),
	}
	for i := range ts.wake {
		ts.wake[i] = make(chan struct{}, 1)
		ts.active[i] = true
	}
	if n > 0 {
		ts.wake[0] <- struct{}{}
	}
	return ts
}

// await blocks until id holds the turn.
func (ts *turnstile) await(ctx context.Context, id int) error {
	select {
	case <-ts.wake[id]:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// yield passes the turn on and waits for it to return. With a single
// active run the turn comes straight back.
func (ts *turnstile) yield(ctx context.Context, id int) error {
	ts.mu.Lock()
	next := ts.nextActive(id, true)
	ts.mu.Unlock()
	ts.signal(next)
	return ts.await(ctx, id)
}

// done retires id and passes the turn on.
func (ts *turnstile) done(id int) {
	ts.mu.Lock()
	ts.active[id] = false
	next := ts.nextActive(id, false)
	ts.mu.Unlock()
	ts.signal(next)
}

// nextActive returns the first active run after id in round-robin order,
// or -1. Callers hold mu.
func (ts *turnstile) nextActive(id int, includeSelf bool) int {
	n := len(ts.active)
	for k := 1; k <= n; k++ {
		c := (id + k) % n
		if c == id && !includeSelf {
			break
		}
		if ts.active[c] {
			return c
		}
	}
	return -1
}

// signal wakes a run. A turn already pending for it is not duplicated; this
// only happens after a cancellation, when every run is unwinding.
func (ts *turnstile) signal(id int) {
	if id < 0 {
		return
	}
	select {
	case ts.wake[id] <- struct{}{}:
	default:
	}
}

type groupKey struct{}

func inGroup(ctx context.Context) bool {
	v, _ := ctx.Value(groupKey{}).(bool)
	return v
}

// turnSink yields the turn after every suspension point of the wrapped sink.
// Animations grouped with viz.All count as a single suspension point.
type turnSink struct {
	next viz.Sink
	ts   *turnstile
	id   int
}

var (
	_ viz.Sink    = (*turnSink)(nil)
	_ viz.Grouper = (*turnSink)(nil)
)

func (s *turnSink) CreateMarker(kind viz.MarkerKind, index int) viz.MarkerHandle {
	return s.next.CreateMarker(kind, index)
}

func (s *turnSink) MoveMarker(ctx context.Context, h viz.MarkerHandle, to int, d time.Duration) error {
	if err := s.next.MoveMarker(ctx, h, to, d); err != nil {
		return err
	}
	return s.yield(ctx)
}

func (s *turnSink) SetLabel(ctx context.Context, slot, value int, d time.Duration) error {
	if err := s.next.SetLabel(ctx, slot, value, d); err != nil {
		return err
	}
	return s.yield(ctx)
}

func (s *turnSink) RemoveMarker(h viz.MarkerHandle) { s.next.RemoveMarker(h) }

func (s *turnSink) Wait(ctx context.Context, d time.Duration) error {
	if err := s.next.Wait(ctx, d); err != nil {
		return err
	}
	return s.yield(ctx)
}

func (s *turnSink) All(ctx context.Context, ops ...func(context.Context) error) error {
	if err := viz.All(context.WithValue(ctx, groupKey{}, true), s.next, ops...); err != nil {
		return err
	}
	return s.yield(ctx)
}

func (s *turnSink) yield(ctx context.Context) error {
	if inGroup(ctx) {
		return nil
	}
	return s.ts.yield(ctx, s.id)
}
