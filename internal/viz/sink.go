//go:generate mockgen -source=sink.go -destination=mocks/mock_sink.go -package=mocks

package viz

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// MarkerKind identifies the role of a marker drawn over the sequence.
type MarkerKind int

const (
	// MarkerPivot tracks the pivot slot.
	MarkerPivot MarkerKind = iota
	// MarkerBoundaryI is Lomuto's "<= pivot" zone boundary.
	MarkerBoundaryI
	// MarkerScanJ is Lomuto's scan cursor.
	MarkerScanJ
	// MarkerScanLeft is Hoare's left cursor.
	MarkerScanLeft
	// MarkerScanRight is Hoare's right cursor.
	MarkerScanRight
)

var markerKindNames = [...]string{"pivot", "boundary-i", "scan-j", "scan-left", "scan-right"}

// String returns the kebab-case name of the kind.
func (k MarkerKind) String() string {
	if k < 0 || int(k) >= len(markerKindNames) {
		return "unknown"
	}
	return markerKindNames[k]
}

// MarkerHandle references a marker created on a sink. Handles are only
// meaningful to the sink that issued them.
type MarkerHandle int

// Sink is the rendering collaborator driven by the sorting core.
//
// MoveMarker, SetLabel and Wait are suspension points: they return once the
// requested animation or pause has elapsed. They fail only when the sink gives
// up, which in practice means ctx was canceled.
type Sink interface {
	// CreateMarker places a new marker of the given kind over index.
	CreateMarker(kind MarkerKind, index int) MarkerHandle
	// MoveMarker animates a marker to index over d.
	MoveMarker(ctx context.Context, h MarkerHandle, to int, d time.Duration) error
	// SetLabel animates the label of slot to value over d.
	SetLabel(ctx context.Context, slot, value int, d time.Duration) error
	// RemoveMarker retires a marker.
	RemoveMarker(h MarkerHandle)
	// Wait pauses for d.
	Wait(ctx context.Context, d time.Duration) error
}

// Grouper is implemented by sinks that schedule simultaneous animations
// themselves instead of letting All run them on separate goroutines.
type Grouper interface {
	All(ctx context.Context, ops ...func(context.Context) error) error
}

// All starts every op at the same time and suspends until all of them have
// completed. The first error is returned.
func All(ctx context.Context, sink Sink, ops ...func(context.Context) error) error {
	if g, ok := sink.(Grouper); ok {
		return g.All(ctx, ops...)
	}
	g, gctx := errgroup.WithContext(ctx)
	for _, op := range ops {
		g.Go(func() error { return op(gctx) })
	}
	return g.Wait()
}

// Sequential runs ops one after the other. Sinks without a wall clock use it
// to implement Grouper, which keeps their event order deterministic.
func Sequential(ctx context.Context, ops ...func(context.Context) error) error {
	for _, op := range ops {
		if err := op(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Timing holds the animation durations requested by the partitioners.
type Timing struct {
	// Step is the duration of a marker move or label change.
	Step time.Duration
	// ScanPause follows each scan iteration.
	ScanPause time.Duration
	// SwapPause follows a Hoare swap.
	SwapPause time.Duration
	// SettlePause follows Lomuto's pivot placement.
	SettlePause time.Duration
	// Final is the pause after both runs have finished.
	Final time.Duration
}

// DefaultTiming returns the stock pacing of the animation.
func DefaultTiming() Timing {
	return Timing{
		Step:        300 * time.Millisecond,
		ScanPause:   200 * time.Millisecond,
		SwapPause:   300 * time.Millisecond,
		SettlePause: 500 * time.Millisecond,
		Final:       2 * time.Second,
	}
}
