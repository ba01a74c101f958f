package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/partviz/internal/cli"
	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/orchestration"
)

// ResultsModel renders the comparison of the finished runs.
type ResultsModel struct {
	results  []orchestration.RunResult
	final    *orchestration.RunResult
	err      error
	duration time.Duration
	exitCode int
	complete bool
	width    int
}

// SetResults records the finished runs.
func (r *ResultsModel) SetResults(results []orchestration.RunResult) {
	r.results = results
}

// SetFinal records the agreed sorted output.
func (r *ResultsModel) SetFinal(res orchestration.RunResult) {
	r.final = &res
}

// SetError records that no run completed.
func (r *ResultsModel) SetError(err error, d time.Duration) {
	r.err = err
	r.duration = d
}

// SetComplete records the exit code of the analysis.
func (r *ResultsModel) SetComplete(exitCode int) {
	r.complete = true
	r.exitCode = exitCode
}

// SetWidth updates the available width.
func (r *ResultsModel) SetWidth(w int) {
	r.width = w
}

// View renders the results panel.
func (r ResultsModel) View() string {
	var lines []string
	if len(r.results) == 0 {
		lines = append(lines, dimStyle.Render("Waiting for the runs to finish..."))
	} else {
		lines = append(lines, metricLabelStyle.Render(fmt.Sprintf("%-8s %10s %12s %8s %10s %6s  %s",
			"Scheme", "Duration", "Comparisons", "Swaps", "Partitions", "Depth", "Status")))
		for _, res := range r.results {
			status := successStyle.Render("ok")
			if res.Err != nil {
				status = errorStyle.Render(res.Err.Error())
			}
			s := res.Stats
			lines = append(lines, fmt.Sprintf("%-8s %10s %12s %8s %10s %6d  %s",
				res.Scheme, format.FormatExecutionDuration(res.Duration),
				format.FormatCount(s.Comparisons), format.FormatCount(s.Swaps),
				format.FormatCount(s.Partitions), s.MaxDepth, status))
		}
	}

	switch {
	case r.err != nil:
		lines = append(lines, "", errorStyle.Render("No scheme could complete the sort: "+r.err.Error()))
	case r.complete && r.exitCode == apperrors.ExitErrorMismatch:
		lines = append(lines, "", errorStyle.Render("CRITICAL ERROR: the outputs are not the same sorted sequence."))
	case r.final != nil:
		lines = append(lines, "",
			successStyle.Render("All outputs are the same sorted sequence."),
			metricLabelStyle.Render("Sorted: ")+cli.FormatSequence(r.final.Output))
	}

	style := panelStyle
	if r.width > 0 {
		style = style.Width(r.width - 2)
	}
	return style.Render(strings.Join(lines, "\n"))
}
