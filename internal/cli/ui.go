//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/ui"
)

const (
	// TruncationLimit is the number of keys from which a sequence is
	// truncated in standard output.
	TruncationLimit = 64
	// DisplayEdges is the number of keys shown at each end of a truncated
	// sequence.
	DisplayEdges = 12
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner abstracts the terminal spinner so that DisplayProgress can be
// tested without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner followed by the average progress of the
// runs and an ETA until progressChan is closed, then prints the final bar.
//
// Parameters:
//   - wg: Done is called on return.
//   - progressChan: The updates of every run.
//   - numRuns: The number of runs sending updates.
//   - out: Destination of the spinner.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	defer wg.Done()
	lanes := orchestration.NewLaneProgress(numRuns)
	if lanes == nil {
		orchestration.DiscardProgress(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out), spinner.WithHiddenCursor(true))
	s.UpdateSuffix(progressSuffix(0, 0, lanes.Averaged()))
	s.Start()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.Stop()
				avg := lanes.Average()
				fmt.Fprintf(out, " %s [%s] %5.1f%%\n", progressLabel(lanes.Averaged()), format.ProgressBar(avg, ProgressBarWidth), avg*100)
				return
			}
			lanes.Observe(update)
		case <-ticker.C:
			s.UpdateSuffix(progressSuffix(lanes.Average(), lanes.ETA(), lanes.Averaged()))
		}
	}
}

func progressLabel(multi bool) string {
	if multi {
		return "Sorting (average)"
	}
	return "Sorting"
}

func progressSuffix(avg float64, eta time.Duration, multi bool) string {
	return fmt.Sprintf(" %s %s", progressLabel(multi), format.FormatProgressBarWithETA(avg, eta, ProgressBarWidth))
}

// DisplayResult prints the agreed sorted output. Verbose mode adds the
// input and the counters of the run.
//
// Parameters:
//   - result: The fastest successful run.
//   - verbose: Whether to print the input and the counters.
//   - showOutput: Whether to print the sorted sequence.
//   - out: Destination of the output.
func DisplayResult(result orchestration.RunResult, verbose, showOutput bool, out io.Writer) {
	fmt.Fprintf(out, "\n--- Sort Result ---\n")
	fmt.Fprintf(out, "Fastest scheme: %s%s%s in %s%s%s.\n",
		ui.ColorBlue(), result.Scheme, ui.ColorReset(),
		ui.ColorYellow(), format.FormatExecutionDuration(result.Duration), ui.ColorReset())

	if verbose {
		fmt.Fprintf(out, "Input:       %s\n", FormatSequence(result.Input))
		fmt.Fprintf(out, "Comparisons: %s%s%s\n", ui.ColorCyan(), format.FormatCount(result.Stats.Comparisons), ui.ColorReset())
		fmt.Fprintf(out, "Swaps:       %s%s%s\n", ui.ColorCyan(), format.FormatCount(result.Stats.Swaps), ui.ColorReset())
		fmt.Fprintf(out, "Partitions:  %s%s%s\n", ui.ColorCyan(), format.FormatCount(result.Stats.Partitions), ui.ColorReset())
		fmt.Fprintf(out, "Max depth:   %s%d%s\n", ui.ColorCyan(), result.Stats.MaxDepth, ui.ColorReset())
	}
	if showOutput {
		fmt.Fprintf(out, "Sorted:      %s%s%s\n", ui.ColorGreen(), formatSequence(result.Output, verbose), ui.ColorReset())
		if !verbose && len(result.Output) > TruncationLimit {
			fmt.Fprintf(out, "%s(truncated) Tip: use -v to print all %d keys.%s\n", ui.ColorGrey(), len(result.Output), ui.ColorReset())
		}
	}
}

// FormatSequence renders keys as "[k0 k1 ...]", keeping only DisplayEdges
// keys at each end of sequences longer than TruncationLimit.
func FormatSequence(keys []int) string {
	return formatSequence(keys, false)
}

func formatSequence(keys []int, full bool) string {
	var b strings.Builder
	b.WriteByte('[')
	write := func(from, to int) {
		for i := from; i < to; i++ {
			if b.Len() > 1 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(keys[i]))
		}
	}
	if full || len(keys) <= TruncationLimit {
		write(0, len(keys))
	} else {
		write(0, DisplayEdges)
		b.WriteString(" ...")
		write(len(keys)-DisplayEdges, len(keys))
	}
	b.WriteByte(']')
	return b.String()
}
