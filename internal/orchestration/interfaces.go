package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/viz"
)

// RunResult is the outcome of sorting the input with one scheme.
type RunResult struct {
	// Scheme is the registry name of the partition scheme, e.g. "lomuto".
	Scheme string
	// Input is the sequence the run started from.
	Input []int
	// Output is the final content of the run's store. On failure it holds
	// the partially sorted permutation reached when the run stopped.
	Output []int
	// Stats are the counters of the run's driver.
	Stats quicksort.Stats
	// Duration is the wall time of the run.
	Duration time.Duration
	// Err is set when the sink gave up before the sort completed.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	// ShowOutput prints the sorted sequence after the comparison table.
	ShowOutput bool
}

// SinkFactory builds the sink a run renders into. index is the run's
// position among the schemes being executed.
type SinkFactory func(index int, scheme string) viz.Sink

// DiscardSinks is a SinkFactory for headless runs.
func DiscardSinks(int, string) viz.Sink { return viz.Discard }

// RunObserver is told about every finished run. The metrics collector
// implements it.
type RunObserver interface {
	ObserveRun(scheme string, stats quicksort.Stats, duration time.Duration, err error)
}

// ProgressReporter displays run progress.
//
// Implementations handle the visual representation of progress (spinners,
// progress bars, a dashboard) while the orchestration layer focuses on
// coordinating the runs.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed, then calls
	// wg.Done. It is started in its own goroutine.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	f(wg, progressChan, numRuns, out)
}

// NullProgressReporter drains the progress channel without displaying
// anything. Used in quiet mode and tests.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DiscardProgress(progressChan)
}

// ResultPresenter presents run results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// PresentResult displays the agreed sorted output.
	PresentResult(result RunResult, opts PresentationOptions, out io.Writer)
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}

// ErrorHandler handles run errors and returns exit codes.
type ErrorHandler interface {
	HandleError(err error, duration time.Duration, out io.Writer) int
}
