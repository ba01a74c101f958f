package quicksort

import (
	"errors"
	"testing"

	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/sequence"
	"github.com/agbru/partviz/internal/viz"
)

// exampleInput is the sequence used throughout the documentation.
var exampleInput = []int{4, 2, 8, 3, 1, 5, 7, 6}

// newTestRun returns a run over keys that renders into rec under lane.
func newTestRun(keys []int, rec *viz.Recorder, lane string) *Run {
	var sink viz.Sink = viz.Discard
	if rec != nil {
		sink = rec.Lane(lane)
	}
	return NewRun(sequence.New(keys), sink, viz.DefaultTiming())
}

// replayLabels applies every label event of lane to a copy of initial.
func replayLabels(initial []int, events []viz.Event) []int {
	out := make([]int, len(initial))
	copy(out, initial)
	for _, e := range events {
		if e.Kind == viz.EventLabelSet {
			out[e.Index] = e.Value
		}
	}
	return out
}

func expectPrecondition(t *testing.T, op string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", op)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("%s: panic payload %T is not an error", op, r)
		}
		var perr apperrors.PreconditionError
		if !errors.As(err, &perr) {
			t.Fatalf("%s: expected PreconditionError, got %v", op, err)
		}
		if perr.Op != op {
			t.Errorf("expected Op %q, got %q", op, perr.Op)
		}
	}()
	fn()
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
