package orchestration

import (
	"time"

	"github.com/agbru/partviz/internal/format"
	"github.com/agbru/partviz/internal/progress"
)

// LaneProgress folds the updates of every lane into a mean fraction and a
// remaining-time estimate. The CLI spinner and the dashboard both read it.
type LaneProgress struct {
	lanes int
	eta   *format.ProgressWithETA
}

// ProgressSnapshot is what a display needs after one update.
type ProgressSnapshot struct {
	Lane    int
	Value   float64
	Average float64
	ETA     time.Duration
}

// NewLaneProgress tracks the given number of lanes. It returns nil when
// there is nothing to track.
func NewLaneProgress(lanes int) *LaneProgress {
	if lanes < 1 {
		return nil
	}
	return &LaneProgress{lanes: lanes, eta: format.NewProgressWithETA(lanes)}
}

// Observe records u and returns the resulting snapshot.
func (p *LaneProgress) Observe(u progress.ProgressUpdate) ProgressSnapshot {
	snap := ProgressSnapshot{Lane: u.RunIndex, Value: u.Value}
	snap.Average, snap.ETA = p.eta.UpdateWithETA(u.RunIndex, u.Value)
	return snap
}

// Average is the mean fraction done over all lanes.
func (p *LaneProgress) Average() float64 { return p.eta.CalculateAverage() }

// ETA is the latest remaining-time estimate, zero when unknown.
func (p *LaneProgress) ETA() time.Duration { return p.eta.GetETA() }

func (p *LaneProgress) Lanes() int { return p.lanes }

// Averaged reports whether Average mixes several lanes.
func (p *LaneProgress) Averaged() bool { return p.lanes > 1 }

// DiscardProgress consumes ch until it is closed.
func DiscardProgress(ch <-chan progress.ProgressUpdate) {
	for range ch {
	}
}
