package tui

import (
	"time"

	"github.com/agbru/partviz/internal/orchestration"
	"github.com/agbru/partviz/internal/sysmon"
	"github.com/agbru/partviz/internal/viz"
)

// Every message produced by a run carries the generation of the run so that
// messages from a run canceled by a restart are ignored.

// VizEventMsg carries one sink call of a lane.
type VizEventMsg struct {
	Generation uint64
	// Lane is the index of the run among the executed schemes.
	Lane  int
	Event viz.Event
}

// ProgressMsg carries the progress of one run and the aggregate.
type ProgressMsg struct {
	Generation      uint64
	RunIndex        int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct {
	Generation uint64
}

// ComparisonResultsMsg carries every run result once all runs finished.
type ComparisonResultsMsg struct {
	Generation uint64
	Results    []orchestration.RunResult
}

// FinalResultMsg carries the agreed sorted output.
type FinalResultMsg struct {
	Generation uint64
	Result     orchestration.RunResult
}

// ErrorMsg reports that no run completed.
type ErrorMsg struct {
	Generation uint64
	Err        error
	Duration   time.Duration
}

// RunsCompleteMsg is returned by the command executing the runs.
type RunsCompleteMsg struct {
	Generation uint64
	ExitCode   int
	Results    []orchestration.RunResult
}

// ContextCancelledMsg reports that the run context ended (timeout, signal).
type ContextCancelledMsg struct {
	Generation uint64
	Err        error
}

// TickMsg refreshes the elapsed time and the activity sparklines of one
// generation.
type TickMsg struct {
	Generation uint64
	Time       time.Time
}

// SysStatsMsg carries a machine load sample.
type SysStatsMsg struct {
	Stats sysmon.Stats
}
