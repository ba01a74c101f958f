package quicksort

import (
	"context"

	"github.com/agbru/partviz/internal/viz"
)

// Hoare partitions around the value of the middle key without moving the
// pivot aside. It returns a split index p such that keys in [Low, p] are
// <= pivot and keys in (p, High] are >= pivot.
//
// After each swap both cursors step past the swapped slots before scanning
// again. Without that step two keys equal to the pivot would be swapped
// forever, and distinct keys could yield a split that does not shrink the
// range: on [1, 0] rescanning from the swapped slots returns 1, leaving the
// left half as large as the input, while stepping past them returns 0. The
// split indices, and so the event stream, therefore differ from a loop that
// rescans in place, on distinct keys as well as on ties.
type Hoare struct{}

var _ Scheme = Hoare{}

// Name implements Scheme.
func (Hoare) Name() string { return "hoare" }

// Split keeps the split index in the left half.
func (Hoare) Split(r Range, p int) (Range, Range) {
	return Range{r.Low, p}, Range{p + 1, r.High}
}

// Partition implements Scheme.
func (Hoare) Partition(ctx context.Context, run *Run, r Range) (int, error) {
	checkPartitionRange("hoare.Partition", run, r)
	sink, t := run.Sink, run.Timing
	low, high := r.Low, r.High
	mid := low + (high-low)/2
	pivotValue := run.Store.Get(mid)

	pivot := sink.CreateMarker(viz.MarkerPivot, mid)
	left := sink.CreateMarker(viz.MarkerScanLeft, low)
	right := sink.CreateMarker(viz.MarkerScanRight, high)
	defer func() {
		sink.RemoveMarker(pivot)
		sink.RemoveMarker(left)
		sink.RemoveMarker(right)
	}()

	for {
		for run.compare(low, pivotValue) < 0 {
			low++
			if err := step(ctx, run, left, low); err != nil {
				return 0, err
			}
		}
		for run.compare(high, pivotValue) > 0 {
			high--
			if err := step(ctx, run, right, high); err != nil {
				return 0, err
			}
		}
		if low >= high {
			return high, nil
		}

		if err := run.swap(ctx, low, high); err != nil {
			return 0, err
		}
		if err := sink.Wait(ctx, t.SwapPause); err != nil {
			return 0, err
		}
		low++
		high--
		if err := viz.All(ctx, sink, run.move(left, low), run.move(right, high)); err != nil {
			return 0, err
		}
	}
}

// step moves a scan cursor and pauses.
func step(ctx context.Context, run *Run, h viz.MarkerHandle, to int) error {
	if err := run.Sink.MoveMarker(ctx, h, to, run.Timing.Step); err != nil {
		return err
	}
	return run.Sink.Wait(ctx, run.Timing.ScanPause)
}
