package cli

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter with a
// spinner and a progress bar.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, out io.Writer) {
	DisplayProgress(wg, progressChan, numRuns, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter with
// colorized terminal output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter   = CLIResultPresenter{}
	_ orchestration.DurationFormatter = CLIResultPresenter{}
	_ orchestration.ErrorHandler      = CLIResultPresenter{}
)

var tableHeaders = []string{"Scheme", "Duration", "Comparisons", "Swaps", "Partitions", "Depth", "Status"}

// PresentComparisonTable displays one row per run with its duration and
// counters. Columns are padded on the plain text so that ANSI codes do not
// break the alignment.
func (p CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")

	rows := make([][]string, len(results))
	widths := make([]int, len(tableHeaders)-1)
	for i, h := range tableHeaders[:len(widths)] {
		widths[i] = len(h)
	}
	for i, res := range results {
		rows[i] = []string{
			res.Scheme,
			p.FormatDuration(res.Duration),
			format.FormatCount(res.Stats.Comparisons),
			format.FormatCount(res.Stats.Swaps),
			format.FormatCount(res.Stats.Partitions),
			strconv.Itoa(res.Stats.MaxDepth),
		}
		for c, cell := range rows[i] {
			widths[c] = max(widths[c], len([]rune(cell)))
		}
	}

	for c, h := range tableHeaders {
		if c > 0 {
			fmt.Fprint(out, "   ")
		}
		fmt.Fprintf(out, "%s%s%s", ui.ColorUnderline(), h, ui.ColorReset())
		if c < len(widths) {
			fmt.Fprint(out, padRight("", widths[c]-len(h)))
		}
	}
	fmt.Fprintln(out)

	colors := []func() string{ui.ColorBlue, ui.ColorYellow, ui.ColorCyan, ui.ColorCyan, ui.ColorCyan, ui.ColorCyan}
	for i, res := range results {
		for c, cell := range rows[i] {
			fmt.Fprintf(out, "%s%s%s%s   ", colors[c](), cell, ui.ColorReset(), padRight("", widths[c]-len([]rune(cell))))
		}
		if res.Err != nil {
			fmt.Fprintf(out, "%s❌ Failure (%v)%s\n", ui.ColorRed(), res.Err, ui.ColorReset())
		} else {
			fmt.Fprintf(out, "%s✅ Success%s\n", ui.ColorGreen(), ui.ColorReset())
		}
	}
}

// padRight returns s followed by length spaces.
func padRight(s string, length int) string {
	if length <= 0 {
		return s
	}
	return s + fmt.Sprintf("%*s", length, "")
}

// PresentResult displays the agreed sorted output.
func (CLIResultPresenter) PresentResult(result orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayResult(result, opts.Verbose, opts.ShowOutput, out)
}

// FormatDuration formats a duration for display. Zero reads as "< 1µs".
func (CLIResultPresenter) FormatDuration(d time.Duration) string {
	if d == 0 {
		return "< 1µs"
	}
	return format.FormatExecutionDuration(d)
}

// HandleError prints a failed execution and returns the matching exit code.
func (CLIResultPresenter) HandleError(err error, duration time.Duration, out io.Writer) int {
	return apperrors.HandleRunError(err, duration, out, CLIColorProvider{})
}

// CLIColorProvider supplies the active theme's colors to apperrors.
type CLIColorProvider struct{}

var _ apperrors.ColorProvider = CLIColorProvider{}

// Red returns the error color.
func (CLIColorProvider) Red() string { return ui.ColorRed() }

// Yellow returns the warning color.
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }

// Reset returns the reset sequence.
func (CLIColorProvider) Reset() string { return ui.ColorReset() }
