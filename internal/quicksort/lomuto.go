package quicksort

import (
	"context"

	"github.com/agbru/partviz/internal/viz"
)

// Lomuto partitions around the rightmost key and leaves the pivot at its
// final index. Keys equal to the pivot go to the left side.
type Lomuto struct{}

var _ Scheme = Lomuto{}

// Name implements Scheme.
func (Lomuto) Name() string { return "lomuto" }

// Split excludes the pivot index from both halves.
func (Lomuto) Split(r Range, p int) (Range, Range) {
	return Range{r.Low, p - 1}, Range{p + 1, r.High}
}

// Partition implements Scheme. On return, every key in [Low, p) is <= the
// key at p and every key in (p, High] is greater.
func (Lomuto) Partition(ctx context.Context, run *Run, r Range) (int, error) {
	checkPartitionRange("lomuto.Partition", run, r)
	sink, t := run.Sink, run.Timing
	low, high := r.Low, r.High

	pivot := sink.CreateMarker(viz.MarkerPivot, high)
	bound := sink.CreateMarker(viz.MarkerBoundaryI, low)
	scan := sink.CreateMarker(viz.MarkerScanJ, low)
	defer func() {
		sink.RemoveMarker(pivot)
		sink.RemoveMarker(bound)
		sink.RemoveMarker(scan)
	}()

	pivotValue := run.Store.Get(high)
	i := low - 1
	for j := low; j < high; j++ {
		if err := sink.MoveMarker(ctx, scan, j, t.Step); err != nil {
			return 0, err
		}
		if run.compare(j, pivotValue) <= 0 {
			i++
			if err := sink.MoveMarker(ctx, bound, i, t.Step); err != nil {
				return 0, err
			}
			if err := run.swap(ctx, i, j); err != nil {
				return 0, err
			}
		}
		if err := sink.Wait(ctx, t.ScanPause); err != nil {
			return 0, err
		}
	}

	i++
	run.Store.Swap(i, high)
	err := viz.All(ctx, sink,
		run.move(bound, i),
		run.label(i),
		run.label(high),
		run.move(pivot, i),
	)
	if err != nil {
		return 0, err
	}
	if err := sink.Wait(ctx, t.SettlePause); err != nil {
		return 0, err
	}
	return i, nil
}
