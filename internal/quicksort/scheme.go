package quicksort

import (
	"cmp"
	"context"
	"fmt"

	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/sequence"
	"github.com/agbru/partviz/internal/viz"
)

// Range is an inclusive pair of indices into a sequence.
// A range with Low >= High needs no work.
type Range struct {
	Low, High int
}

// Terminal reports whether the range holds at most one key.
func (r Range) Terminal() bool { return r.Low >= r.High }

// Len returns the number of indices covered by the range.
func (r Range) Len() int {
	if r.High < r.Low {
		return 0
	}
	return r.High - r.Low + 1
}

func (r Range) String() string { return fmt.Sprintf("[%d,%d]", r.Low, r.High) }

// Scheme is a partition strategy together with the recursion split that
// matches it.
type Scheme interface {
	// Name returns the registry key of the scheme, e.g. "lomuto".
	Name() string
	// Partition rearranges run's store over r, which holds at least two
	// keys, and returns the scheme's split index.
	Partition(ctx context.Context, run *Run, r Range) (int, error)
	// Split returns the two sub-ranges to recurse into after Partition
	// returned p.
	Split(r Range, p int) (left, right Range)
}

// Run is the state partition calls share within one sort: the store being
// mutated, the sink animating it, the pacing, and a comparison counter.
type Run struct {
	Store  *sequence.Store
	Sink   viz.Sink
	Timing viz.Timing

	comparisons uint64
}

// NewRun binds a store to a sink.
func NewRun(store *sequence.Store, sink viz.Sink, timing viz.Timing) *Run {
	if sink == nil {
		sink = viz.Discard
	}
	return &Run{Store: store, Sink: sink, Timing: timing}
}

// Comparisons returns the number of key-versus-pivot comparisons so far.
func (r *Run) Comparisons() uint64 { return r.comparisons }

// compare compares the key at i with pivot.
func (r *Run) compare(i, pivot int) int {
	r.comparisons++
	return cmp.Compare(r.Store.Get(i), pivot)
}

// swap exchanges two slots in memory, then animates both labels at once so
// the sink only ever shows values the store already holds.
func (r *Run) swap(ctx context.Context, i, j int) error {
	r.Store.Swap(i, j)
	return viz.All(ctx, r.Sink, r.label(i), r.label(j))
}

func (r *Run) label(slot int) func(context.Context) error {
	value := r.Store.Get(slot)
	return func(ctx context.Context) error {
		return r.Sink.SetLabel(ctx, slot, value, r.Timing.Step)
	}
}

func (r *Run) move(h viz.MarkerHandle, to int) func(context.Context) error {
	return func(ctx context.Context) error {
		return r.Sink.MoveMarker(ctx, h, to, r.Timing.Step)
	}
}

// checkPartitionRange enforces low <= high inside the store.
func checkPartitionRange(op string, run *Run, r Range) {
	if r.Low < 0 || r.High >= run.Store.Len() || r.Low > r.High {
		apperrors.Preconditionf(op, "range %s invalid for length %d", r, run.Store.Len())
	}
}
