package quicksort

import (
	"context"
	"fmt"
	"testing"

	"github.com/agbru/partviz/internal/viz"
)

// TestPartitionSingleKeyRange checks that a one-key range is accepted, left
// as is, and retires every marker it created.
func TestPartitionSingleKeyRange(t *testing.T) {
	t.Parallel()
	keys := []int{3, 1, 2}
	for _, scheme := range allSchemes() {
		for k := range keys {
			t.Run(fmt.Sprintf("%s/%d", scheme.Name(), k), func(t *testing.T) {
				t.Parallel()
				rec := viz.NewRecorder()
				run := newTestRun(append([]int(nil), keys...), rec, scheme.Name())
				p, err := scheme.Partition(context.Background(), run, Range{k, k})
				if err != nil {
					t.Fatalf("Partition([%d,%d]) error = %v", k, k, err)
				}
				if p != k {
					t.Errorf("Partition([%d,%d]) = %d, want %d", k, k, p, k)
				}
				if got := run.Store.Swaps(); got != 0 {
					t.Errorf("swaps = %d, want 0", got)
				}
				if !equalInts(run.Store.Snapshot(), keys) {
					t.Errorf("store = %v, want %v", run.Store.Snapshot(), keys)
				}
				if got := rec.Count(scheme.Name(), viz.EventMarkerCreated); got != 3 {
					t.Errorf("created %d markers, want 3", got)
				}
				if got := rec.Live(scheme.Name()); got != 0 {
					t.Errorf("%d markers still live", got)
				}
			})
		}
	}
}
