package orchestration

import (
	"context"
	"io"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/viz"
)

// mockProgressReporter that just drains the channel.
type mockProgressReporter struct{}

func (m *mockProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	defer wg.Done()
	for range progressChan {
	} // drain until closed
}

// stalledReporter reads nothing until the runs are over, so every progress
// send must be non-blocking.
type stalledReporter struct{ release chan struct{} }

func (r *stalledReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	defer wg.Done()
	<-r.release
	DiscardProgress(progressChan)
}

func pacedSinks(speed float64) SinkFactory {
	return func(_ int, scheme string) viz.Sink { return viz.NewPaced(scheme, speed, nil) }
}

func randomKeys(n int, seed int64) []int {
	rng := rand.New(rand.NewSource(seed))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Intn(100)
	}
	return keys
}

// TestOrchestrationNoDeadlock_MixedBehaviors verifies that ExecuteRuns
// completes without deadlocking under various run behavior combinations.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	testCases := []struct {
		name    string
		input   []int
		schemes []quicksort.Scheme
		sinks   SinkFactory
	}{
		{
			name:    "all_instant",
			input:   exampleInput,
			schemes: []quicksort.Scheme{quicksort.Lomuto{}, quicksort.Hoare{}, quicksort.Lomuto{}},
		},
		{
			name:    "paced",
			input:   exampleInput,
			schemes: []quicksort.Scheme{quicksort.Lomuto{}, quicksort.Hoare{}},
			sinks:   pacedSinks(1000),
		},
		{
			name:    "mixed_with_errors",
			input:   exampleInput,
			schemes: []quicksort.Scheme{quicksort.Hoare{}, failingScheme("err")},
		},
		{
			name:    "progress_flood",
			input:   randomKeys(2000, 1),
			schemes: []quicksort.Scheme{quicksort.Lomuto{}, quicksort.Hoare{}},
		},
		{
			name:    "single_run",
			input:   []int{1},
			schemes: []quicksort.Scheme{quicksort.Hoare{}},
		},
	}

	for _, tc := range testCases {
		for _, mode := range Modes {
			t.Run(tc.name+"/"+string(mode), func(t *testing.T) {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				done := make(chan struct{})
				go func() {
					defer close(done)
					ExecuteRuns(ctx, tc.input, tc.schemes, RunOptions{Mode: mode}, tc.sinks, &mockProgressReporter{}, io.Discard)
				}()

				select {
				case <-done:
					// Success - no deadlock
				case <-time.After(10 * time.Second):
					t.Fatal("DEADLOCK: ExecuteRuns did not complete within timeout")
				}
			})
		}
	}
}

// TestOrchestrationNoDeadlock_StalledReporter verifies that a reporter that
// does not read does not block the runs.
func TestOrchestrationNoDeadlock_StalledReporter(t *testing.T) {
	reporter := &stalledReporter{release: make(chan struct{})}
	done := make(chan struct{})
	go func() {
		defer close(done)
		ExecuteRuns(context.Background(), randomKeys(500, 2),
			[]quicksort.Scheme{quicksort.Lomuto{}, quicksort.Hoare{}},
			RunOptions{}, nil, reporter, io.Discard)
	}()

	// Intermediate updates are dropped; the final ones wait for the reporter.
	time.Sleep(200 * time.Millisecond)
	close(reporter.release)

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("DEADLOCK with a stalled reporter")
	}
}

// TestOrchestrationNoDeadlock_ContextCancellation verifies that cancelling
// the context during paced runs does not cause a deadlock.
func TestOrchestrationNoDeadlock_ContextCancellation(t *testing.T) {
	for _, mode := range Modes {
		t.Run(string(mode), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())

			var results []RunResult
			done := make(chan struct{})
			go func() {
				defer close(done)
				results = ExecuteRuns(ctx, exampleInput,
					[]quicksort.Scheme{quicksort.Lomuto{}, quicksort.Hoare{}},
					RunOptions{Mode: mode}, pacedSinks(1), &mockProgressReporter{}, io.Discard)
			}()

			// Cancel after a short delay
			time.Sleep(50 * time.Millisecond)
			cancel()

			select {
			case <-done:
				for _, res := range results {
					if res.Err == nil {
						t.Errorf("%s finished a paced sort in 50ms, expected cancellation", res.Scheme)
					}
				}
			case <-time.After(5 * time.Second):
				t.Fatal("DEADLOCK after context cancellation")
			}
		})
	}
}
