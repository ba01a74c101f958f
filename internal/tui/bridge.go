package tui

import (
	"io"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/partviz/internal/errors"
	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/progress"
	"github.com/agbru/partviz/internal/viz"
)

// programRef lets the sort goroutines reach the program. The model is copied
// on every Update, so it holds this pointer rather than the program itself.
type programRef struct {
	mu      sync.RWMutex
	program *tea.Program
}

// SetProgram installs p. Sends before that are dropped.
func (r *programRef) SetProgram(p *tea.Program) {
	r.mu.Lock()
	r.program = p
	r.mu.Unlock()
}

func (r *programRef) Send(msg tea.Msg) {
	r.mu.RLock()
	p := r.program
	r.mu.RUnlock()
	if p != nil {
		p.Send(msg)
	}
}

// laneSinks returns a SinkFactory whose paced sinks forward every event to
// the program as a VizEventMsg.
func laneSinks(ref *programRef, speed float64, gen uint64) orchestration.SinkFactory {
	return func(index int, scheme string) viz.Sink {
		return viz.NewPaced(scheme, speed, func(e viz.Event) {
			ref.Send(VizEventMsg{Generation: gen, Lane: index, Event: e})
		})
	}
}

// TUIProgressReporter turns the averaged run progress into ProgressMsg
// values for the lane bars and the header ETA.
type TUIProgressReporter struct {
	ref        *programRef
	generation uint64
}

var _ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)

// DisplayProgress consumes progressChan until it is closed.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan progress.ProgressUpdate, numRuns int, _ io.Writer) {
	defer wg.Done()

	lanes := orchestration.NewLaneProgress(numRuns)
	if lanes == nil {
		orchestration.DiscardProgress(progressChan)
		return
	}

	for u := range progressChan {
		snap := lanes.Observe(u)
		t.ref.Send(ProgressMsg{
			Generation:      t.generation,
			RunIndex:        snap.Lane,
			Value:           snap.Value,
			AverageProgress: snap.Average,
			ETA:             snap.ETA,
		})
	}
	t.ref.Send(ProgressDoneMsg{Generation: t.generation})
}

// TUIResultPresenter routes the comparison outcome into the results panel.
// The writers it receives are ignored: the dashboard owns the terminal.
type TUIResultPresenter struct {
	ref        *programRef
	generation uint64
}

var (
	_ orchestration.ResultPresenter   = (*TUIResultPresenter)(nil)
	_ orchestration.DurationFormatter = (*TUIResultPresenter)(nil)
	_ orchestration.ErrorHandler      = (*TUIResultPresenter)(nil)
)

// PresentComparisonTable sends the run results to the TUI.
func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Generation: t.generation, Results: results})
}

// PresentResult sends the agreed sorted output to the TUI.
func (t *TUIResultPresenter) PresentResult(result orchestration.RunResult, _ orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(FinalResultMsg{Generation: t.generation, Result: result})
}

func (t *TUIResultPresenter) FormatDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// HandleError shows err in the results panel and maps it to an exit code.
func (t *TUIResultPresenter) HandleError(err error, duration time.Duration, _ io.Writer) int {
	t.ref.Send(ErrorMsg{Generation: t.generation, Err: err, Duration: duration})
	return apperrors.HandleRunError(err, duration, io.Discard, nil)
}
