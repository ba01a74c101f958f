package quicksort

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/sequence"
	"github.com/agbru/partviz/internal/viz"
)

const tracerName = "github.com/agbru/partviz/internal/quicksort"

// Stats summarizes the work done by a Driver.
type Stats struct {
	Comparisons uint64
	Swaps       uint64
	Partitions  uint64
	// MaxDepth is the deepest recursion level that ran a partition,
	// starting at 1 for the whole range.
	MaxDepth int
}

// Driver sorts one store with one scheme.
//
// A Driver is not safe for concurrent use; concurrent runs each own a Driver
// and a Store.
type Driver struct {
	scheme   Scheme
	run      *Run
	progress progress.ProgressCallback
	tracer   trace.Tracer

	settled    int
	partitions uint64
	maxDepth   int
}

// Option configures a Driver.
type Option func(*Driver)

// WithTiming overrides the animation durations requested from the sink.
func WithTiming(t viz.Timing) Option {
	return func(d *Driver) { d.run.Timing = t }
}

// WithProgress registers a callback receiving the fraction of indices whose
// final key is known. It reaches 1.0 exactly when a full sort completes.
func WithProgress(cb progress.ProgressCallback) Option {
	return func(d *Driver) { d.progress = cb }
}

// WithTracer sets the tracer used for sort and partition spans.
func WithTracer(t trace.Tracer) Option {
	return func(d *Driver) { d.tracer = t }
}

// NewDriver creates a driver. A nil sink renders nothing.
func NewDriver(scheme Scheme, store *sequence.Store, sink viz.Sink, opts ...Option) *Driver {
	d := &Driver{
		scheme: scheme,
		run:    NewRun(store, sink, viz.DefaultTiming()),
		tracer: otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Scheme returns the driver's partition scheme.
func (d *Driver) Scheme() Scheme { return d.scheme }

// Sort sorts the whole store.
func (d *Driver) Sort(ctx context.Context) error {
	return d.SortRange(ctx, Range{0, d.run.Store.Len() - 1})
}

// SortRange sorts r in place. The range must satisfy
// 0 <= Low <= High+1 <= Len. An error is returned only when the sink gives
// up, in which case the store is left partially sorted but still a
// permutation of its input.
func (d *Driver) SortRange(ctx context.Context, r Range) error {
	n := d.run.Store.Len()
	if r.Low < 0 || r.Low > r.High+1 || r.High+1 > n {
		apperrors.Preconditionf("quicksort.SortRange", "range %s invalid for length %d", r, n)
	}

	ctx, span := d.tracer.Start(ctx, "quicksort.Sort", trace.WithAttributes(
		attribute.String("scheme", d.scheme.Name()),
		attribute.Int("range.low", r.Low),
		attribute.Int("range.high", r.High),
	))
	defer span.End()

	if err := d.sort(ctx, r, 1); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	stats := d.Stats()
	span.SetAttributes(
		attribute.Int64("comparisons", int64(stats.Comparisons)),
		attribute.Int64("swaps", int64(stats.Swaps)),
		attribute.Int64("partitions", int64(stats.Partitions)),
	)
	return nil
}

func (d *Driver) sort(ctx context.Context, r Range, depth int) error {
	if r.Terminal() {
		d.settle(r.Len())
		return nil
	}

	p, err := d.partition(ctx, r, depth)
	if err != nil {
		return err
	}
	if p < r.Low || p > r.High {
		apperrors.Preconditionf("quicksort.sort", "%s returned split %d outside %s", d.scheme.Name(), p, r)
	}
	left, right := d.scheme.Split(r, p)
	if left.Len() >= r.Len() || right.Len() >= r.Len() {
		apperrors.Preconditionf("quicksort.sort", "%s split %s at %d does not shrink", d.scheme.Name(), r, p)
	}
	d.settle(r.Len() - left.Len() - right.Len())

	if err := d.sort(ctx, left, depth+1); err != nil {
		return err
	}
	return d.sort(ctx, right, depth+1)
}

func (d *Driver) partition(ctx context.Context, r Range, depth int) (int, error) {
	ctx, span := d.tracer.Start(ctx, "quicksort.Partition", trace.WithAttributes(
		attribute.String("scheme", d.scheme.Name()),
		attribute.Int("low", r.Low),
		attribute.Int("high", r.High),
		attribute.Int("depth", depth),
	))
	defer span.End()

	d.partitions++
	if depth > d.maxDepth {
		d.maxDepth = depth
	}
	p, err := d.scheme.Partition(ctx, d.run, r)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int("split", p))
	return p, nil
}

// settle records k more indices whose final key is known.
func (d *Driver) settle(k int) {
	if k <= 0 {
		return
	}
	d.settled += k
	if d.progress != nil {
		d.progress(float64(d.settled) / float64(d.run.Store.Len()))
	}
}

// Stats returns the counters accumulated so far.
func (d *Driver) Stats() Stats {
	return Stats{
		Comparisons: d.run.Comparisons(),
		Swaps:       d.run.Store.Swaps(),
		Partitions:  d.partitions,
		MaxDepth:    d.maxDepth,
	}
}
