package orchestration

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/logging"
	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/quicksort"
	"github.com/agbru/partviz/internal/sequence"
	"github.com/agbru/partviz/internal/viz"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking run goroutines
// when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// RunOptions configures ExecuteRuns.
type RunOptions struct {
	// Mode selects free-running or lockstep scheduling. Empty means
	// ModeConcurrent.
	Mode Mode
	// Timing is passed to every driver.
	Timing viz.Timing
	// FinalPause is held after all runs finished, so a live display can
	// show the sorted sequences before returning.
	FinalPause time.Duration
	// Logger receives run lifecycle entries. Nil disables logging.
	Logger logging.Logger
	// Trace logs every sink call at debug level through Logger.
	Trace bool
	// Observers receive progress in addition to the reporter.
	Observers []progress.ProgressObserver
	// RunObserver is told about each finished run, e.g. to export metrics.
	RunObserver RunObserver
}

// ExecuteRuns sorts a copy of input with each scheme and returns once every
// run has finished.
//
// Runs share nothing but the input values they were seeded from. A run that
// fails (its sink gave up) does not stop the others; its error is reported in
// its RunResult. Results are returned in the order of schemes.
//
// Parameters:
//   - ctx: Cancels every run through its sink.
//   - input: The keys to sort. It must not be empty.
//   - schemes: One run is started per scheme.
//   - opts: Scheduling, pacing and logging options.
//   - newSink: Builds the sink of each run; nil renders nothing.
//   - reporter: Displays progress (use NullProgressReporter for quiet mode).
//   - out: The io.Writer handed to the reporter.
func ExecuteRuns(ctx context.Context, input []int, schemes []quicksort.Scheme, opts RunOptions, newSink SinkFactory, reporter ProgressReporter, out io.Writer) []RunResult {
	if newSink == nil {
		newSink = DiscardSinks
	}
	results := make([]RunResult, len(schemes))
	progressChan := make(chan progress.ProgressUpdate, len(schemes)*ProgressBufferMultiplier)

	subject := progress.NewProgressSubject()
	subject.Register(progress.NewChannelObserver(progressChan))
	for _, o := range opts.Observers {
		subject.Register(o)
	}

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(schemes), out)

	var turns *turnstile
	if opts.Mode == ModeLockstep {
		turns = newTurnstile(len(schemes))
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, s := range schemes {
		idx, scheme := i, s
		sink := newSink(idx, scheme.Name())
		if sink == nil {
			sink = viz.Discard
		}
		if opts.Trace && opts.Logger != nil {
			sink = viz.NewLogged(sink, scheme.Name(), opts.Logger)
		}
		if turns != nil {
			sink = &turnSink{next: sink, ts: turns, id: idx}
		}
		g.Go(func() error {
			if turns != nil {
				defer turns.done(idx)
				if err := turns.await(gctx, idx); err != nil {
					results[idx] = failedRun(scheme.Name(), input, err)
					return nil
				}
			}
			results[idx] = runOne(gctx, scheme, input, sink, opts, subject.Freeze(idx))
			return nil
		})
	}

	g.Wait()
	close(progressChan)
	displayWg.Wait()

	if opts.FinalPause > 0 {
		timer := time.NewTimer(opts.FinalPause)
		select {
		case <-ctx.Done():
		case <-timer.C:
		}
		timer.Stop()
	}
	return results
}

func runOne(ctx context.Context, scheme quicksort.Scheme, input []int, sink viz.Sink, opts RunOptions, cb progress.ProgressCallback) RunResult {
	name := scheme.Name()
	store := sequence.New(input)
	driver := quicksort.NewDriver(scheme, store, sink,
		quicksort.WithTiming(opts.Timing),
		quicksort.WithProgress(cb),
	)
	if opts.Logger != nil {
		opts.Logger.Info("run started",
			logging.String("scheme", name), logging.Int("keys", len(input)), logging.String("mode", string(opts.Mode)))
	}

	start := time.Now()
	err := driver.Sort(ctx)
	duration := time.Since(start)
	if err != nil {
		err = apperrors.SortError{Scheme: name, Cause: err}
	}
	res := RunResult{
		Scheme:   name,
		Input:    slices.Clone(input),
		Output:   store.Snapshot(),
		Stats:    driver.Stats(),
		Duration: duration,
		Err:      err,
	}

	if opts.Logger != nil {
		if err != nil {
			opts.Logger.Error("run failed", err, logging.String("scheme", name), logging.Duration("duration", duration))
		} else {
			opts.Logger.Info("run finished",
				logging.String("scheme", name),
				logging.Duration("duration", duration),
				logging.Uint64("comparisons", res.Stats.Comparisons),
				logging.Uint64("swaps", res.Stats.Swaps),
				logging.Uint64("partitions", res.Stats.Partitions),
				logging.Int("max_depth", res.Stats.MaxDepth))
		}
	}
	if opts.RunObserver != nil {
		opts.RunObserver.ObserveRun(name, res.Stats, duration, err)
	}
	return res
}

func failedRun(scheme string, input []int, err error) RunResult {
	return RunResult{
		Scheme: scheme,
		Input:  slices.Clone(input),
		Output: slices.Clone(input),
		Err:    apperrors.SortError{Scheme: scheme, Cause: err},
	}
}

// AnalyzeRunResults processes the results of all runs and produces the
// summary report.
//
// Results are ordered successes first, fastest first. Every successful output
// must be a sorted permutation of the input and all successful outputs must
// agree; otherwise the status is a mismatch.
//
// Parameters:
//   - results: The run results to analyze. The slice is reordered.
//   - opts: Presentation options.
//   - presenter: The result presenter for display formatting.
//   - errHandler: Maps the first failure to an exit code when no run succeeded.
//   - out: The io.Writer for the summary report.
//
// Returns:
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeRunResults(results []RunResult, opts PresentationOptions, presenter ResultPresenter, errHandler ErrorHandler, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *RunResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No scheme could complete the sort.\n")
		return errHandler.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err != nil {
			continue
		}
		if !sequence.IsSorted(res.Output) || !sequence.IsPermutation(res.Output, res.Input) ||
			!slices.Equal(res.Output, firstValidResult.Output) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! The %s output is not the sorted input.\n", res.Scheme)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All outputs are the same sorted sequence.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
