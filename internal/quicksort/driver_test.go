package quicksort

import (
	"context"
	"errors"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/agbru/partviz/internal/sequence"
	"github.com/agbru/partviz/internal/viz"
)

func allSchemes() []Scheme {
	return []Scheme{Lomuto{}, Hoare{}}
}

func TestDriverSortsExample(t *testing.T) {
	t.Parallel()
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for _, scheme := range allSchemes() {
		t.Run(scheme.Name(), func(t *testing.T) {
			t.Parallel()
			store := sequence.New(exampleInput)
			if err := NewDriver(scheme, store, nil).Sort(context.Background()); err != nil {
				t.Fatalf("Sort() error = %v", err)
			}
			if got := store.Snapshot(); !equalInts(got, want) {
				t.Errorf("Sort() = %v, want %v", got, want)
			}
		})
	}
}

func TestDriverEdgeInputs(t *testing.T) {
	t.Parallel()
	inputs := map[string][]int{
		"single":     {42},
		"pair":       {2, 1},
		"sorted":     {1, 2, 3, 4, 5, 6},
		"reverse":    {6, 5, 4, 3, 2, 1},
		"duplicates": {3, 1, 3, 1, 3, 1, 2},
		"all same":   {9, 9, 9, 9, 9, 9, 9},
		"negatives":  {0, -3, 7, -3, 2, -10},
	}
	for _, scheme := range allSchemes() {
		for name, keys := range inputs {
			t.Run(scheme.Name()+"/"+name, func(t *testing.T) {
				t.Parallel()
				store := sequence.New(keys)
				if err := NewDriver(scheme, store, viz.Discard).Sort(context.Background()); err != nil {
					t.Fatalf("Sort() error = %v", err)
				}
				got := store.Snapshot()
				if !sequence.IsSorted(got) || !sequence.IsPermutation(got, keys) {
					t.Errorf("Sort(%v) = %v", keys, got)
				}
			})
		}
	}
}

// TestDriverSort_PropertyBased verifies that both schemes produce a sorted
// permutation with a recursion depth bounded by the input size.
func TestDriverSort_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	for _, scheme := range allSchemes() {
		properties.Property(scheme.Name()+" sorts any input", prop.ForAll(
			func(keys []int) bool {
				if len(keys) == 0 {
					return true
				}
				store := sequence.New(keys)
				d := NewDriver(scheme, store, nil)
				if err := d.Sort(context.Background()); err != nil {
					return false
				}
				got := store.Snapshot()
				return sequence.IsSorted(got) && sequence.IsPermutation(got, keys) && d.Stats().MaxDepth <= len(keys)
			},
			gen.SliceOf(gen.IntRange(-30, 30)),
		))
	}

	properties.TestingRun(t)
}

func TestDriverSortedInputPerformsNoSwaps(t *testing.T) {
	t.Parallel()
	keys := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	for _, scheme := range allSchemes() {
		t.Run(scheme.Name(), func(t *testing.T) {
			t.Parallel()
			store := sequence.New(keys)
			if err := NewDriver(scheme, store, nil).Sort(context.Background()); err != nil {
				t.Fatalf("Sort() error = %v", err)
			}
			if got := store.Swaps(); got != 0 {
				t.Errorf("swaps = %d, want 0", got)
			}
		})
	}
}

func TestDriverStats(t *testing.T) {
	t.Parallel()
	d := NewDriver(Lomuto{}, sequence.New(exampleInput), nil)
	if err := d.Sort(context.Background()); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	want := Stats{Comparisons: 18, Swaps: 5, Partitions: 6, MaxDepth: 5}
	if got := d.Stats(); got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}

func TestDriverProgress(t *testing.T) {
	t.Parallel()
	for _, scheme := range allSchemes() {
		t.Run(scheme.Name(), func(t *testing.T) {
			t.Parallel()
			var values []float64
			d := NewDriver(scheme, sequence.New(exampleInput), nil,
				WithProgress(func(p float64) { values = append(values, p) }))
			if err := d.Sort(context.Background()); err != nil {
				t.Fatalf("Sort() error = %v", err)
			}
			if len(values) == 0 {
				t.Fatal("no progress reported")
			}
			for i := 1; i < len(values); i++ {
				if values[i] < values[i-1] {
					t.Errorf("progress went backwards: %v", values)
				}
			}
			for i, v := range values {
				if v == 1.0 && i != len(values)-1 {
					t.Errorf("progress hit 1.0 before completion: %v", values)
				}
			}
			if last := values[len(values)-1]; last != 1.0 {
				t.Errorf("final progress = %f, want 1.0", last)
			}
		})
	}
}

func TestDriverSingleKeyReportsCompletion(t *testing.T) {
	t.Parallel()
	var values []float64
	d := NewDriver(Hoare{}, sequence.New([]int{7}), nil,
		WithProgress(func(p float64) { values = append(values, p) }),
		WithTracer(noop.NewTracerProvider().Tracer("test")))
	if err := d.Sort(context.Background()); err != nil {
		t.Fatalf("Sort() error = %v", err)
	}
	if len(values) != 1 || values[0] != 1.0 {
		t.Errorf("progress = %v, want [1]", values)
	}
	if got := d.Stats().Partitions; got != 0 {
		t.Errorf("partitions = %d, want 0", got)
	}
}

func TestDriverSortRangePreconditions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		r    Range
	}{
		{"negative low", Range{-1, 3}},
		{"low past high+1", Range{4, 2}},
		{"high past end", Range{0, 8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := NewDriver(Lomuto{}, sequence.New(exampleInput), nil)
			expectPrecondition(t, "quicksort.SortRange", func() {
				_ = d.SortRange(context.Background(), tt.r)
			})
		})
	}
}

func TestDriverSortRangeEmptyIsNoOp(t *testing.T) {
	t.Parallel()
	store := sequence.New(exampleInput)
	d := NewDriver(Hoare{}, store, nil)
	if err := d.SortRange(context.Background(), Range{8, 7}); err != nil {
		t.Fatalf("SortRange() error = %v", err)
	}
	if got := store.Snapshot(); !equalInts(got, exampleInput) {
		t.Errorf("empty range changed the store: %v", got)
	}
}

func TestDriverSortRangeLeavesOutsideUntouched(t *testing.T) {
	t.Parallel()
	keys := []int{9, 8, 7, 3, 1, 2, 0, -1}
	store := sequence.New(keys)
	if err := NewDriver(Lomuto{}, store, nil).SortRange(context.Background(), Range{3, 5}); err != nil {
		t.Fatalf("SortRange() error = %v", err)
	}
	want := []int{9, 8, 7, 1, 2, 3, 0, -1}
	if got := store.Snapshot(); !equalInts(got, want) {
		t.Errorf("SortRange() = %v, want %v", got, want)
	}
}

// TestDriverStopsWhenSinkGivesUp checks that a canceled sink ends the sort
// with the context error and without leaking markers.
func TestDriverStopsWhenSinkGivesUp(t *testing.T) {
	t.Parallel()
	for _, scheme := range allSchemes() {
		t.Run(scheme.Name(), func(t *testing.T) {
			t.Parallel()
			rec := viz.NewRecorder()
			store := sequence.New(exampleInput)
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			err := NewDriver(scheme, store, rec.Lane(scheme.Name())).Sort(ctx)
			if !errors.Is(err, context.Canceled) {
				t.Fatalf("Sort() error = %v, want context.Canceled", err)
			}
			if live := rec.Live(scheme.Name()); live != 0 {
				t.Errorf("%d markers left on the sink", live)
			}
			if !sequence.IsPermutation(store.Snapshot(), exampleInput) {
				t.Errorf("store is no longer a permutation of the input")
			}
		})
	}
}

// TestDriverEventStream checks that the recorded animation of a full sort
// ends showing the sorted sequence and that every marker was retired.
func TestDriverEventStream(t *testing.T) {
	t.Parallel()
	for _, scheme := range allSchemes() {
		t.Run(scheme.Name(), func(t *testing.T) {
			t.Parallel()
			rec := viz.NewRecorder()
			store := sequence.New(exampleInput)
			d := NewDriver(scheme, store, rec.Lane(scheme.Name()))
			if err := d.Sort(context.Background()); err != nil {
				t.Fatalf("Sort() error = %v", err)
			}
			events := rec.LaneEvents(scheme.Name())
			if got := replayLabels(exampleInput, events); !equalInts(got, store.Snapshot()) {
				t.Errorf("rendered %v, store holds %v", got, store.Snapshot())
			}
			created := rec.Count(scheme.Name(), viz.EventMarkerCreated)
			removed := rec.Count(scheme.Name(), viz.EventMarkerRemoved)
			if created != removed || created != 3*int(d.Stats().Partitions) {
				t.Errorf("created %d markers, removed %d, for %d partitions", created, removed, d.Stats().Partitions)
			}
		})
	}
}

func TestDriverSpans(t *testing.T) {
	t.Parallel()
	for _, scheme := range allSchemes() {
		t.Run(scheme.Name(), func(t *testing.T) {
			t.Parallel()
			sr := tracetest.NewSpanRecorder()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
			store := sequence.New(exampleInput)
			d := NewDriver(scheme, store, nil, WithTracer(tp.Tracer("test")))
			if err := d.Sort(context.Background()); err != nil {
				t.Fatalf("Sort() error = %v", err)
			}

			var sorts, partitions int
			for _, span := range sr.Ended() {
				attrs := map[attribute.Key]attribute.Value{}
				for _, kv := range span.Attributes() {
					attrs[kv.Key] = kv.Value
				}
				if got := attrs["scheme"].AsString(); got != scheme.Name() {
					t.Errorf("%s span scheme = %q, want %q", span.Name(), got, scheme.Name())
				}
				switch span.Name() {
				case "quicksort.Sort":
					sorts++
					if got := attrs["partitions"].AsInt64(); got != int64(d.Stats().Partitions) {
						t.Errorf("sort span partitions = %d, want %d", got, d.Stats().Partitions)
					}
				case "quicksort.Partition":
					partitions++
					if !span.Parent().IsValid() {
						t.Errorf("partition span has no parent")
					}
					low, high := attrs["low"].AsInt64(), attrs["high"].AsInt64()
					if split, ok := attrs["split"]; !ok || split.AsInt64() < low || split.AsInt64() > high {
						t.Errorf("partition [%d,%d] split = %v", low, high, split.Emit())
					}
					if depth := attrs["depth"].AsInt64(); depth < 1 || depth > int64(d.Stats().MaxDepth) {
						t.Errorf("partition depth = %d, max %d", depth, d.Stats().MaxDepth)
					}
				default:
					t.Errorf("unexpected span %q", span.Name())
				}
			}
			if sorts != 1 {
				t.Errorf("got %d sort spans, want 1", sorts)
			}
			if partitions != int(d.Stats().Partitions) {
				t.Errorf("got %d partition spans, want %d", partitions, d.Stats().Partitions)
			}
		})
	}
}
