package orchestration

import (
	"testing"
	"time"

	"github.com/agbru/partviz/internal/progress"
)

func TestNewLaneProgress(t *testing.T) {
	t.Parallel()
	tests := []struct {
		lanes    int
		wantNil  bool
		averaged bool
	}{
		{-1, true, false},
		{0, true, false},
		{1, false, false},
		{2, false, true},
	}
	for _, tt := range tests {
		p := NewLaneProgress(tt.lanes)
		if got := p == nil; got != tt.wantNil {
			t.Errorf("NewLaneProgress(%d) == nil is %v, want %v", tt.lanes, got, tt.wantNil)
			continue
		}
		if p != nil && (p.Lanes() != tt.lanes || p.Averaged() != tt.averaged) {
			t.Errorf("NewLaneProgress(%d): Lanes() = %d, Averaged() = %v", tt.lanes, p.Lanes(), p.Averaged())
		}
	}
}

func TestLaneProgressObserve(t *testing.T) {
	t.Parallel()
	p := NewLaneProgress(2)
	if p.Average() != 0 || p.ETA() != 0 {
		t.Fatalf("fresh tracker: Average() = %g, ETA() = %s", p.Average(), p.ETA())
	}

	snap := p.Observe(progress.ProgressUpdate{RunIndex: 0, Value: 0.5})
	if want := (ProgressSnapshot{Lane: 0, Value: 0.5, Average: 0.25, ETA: snap.ETA}); snap != want {
		t.Errorf("Observe() = %+v, want %+v", snap, want)
	}
	if snap.ETA < 0 || snap.ETA > 24*time.Hour {
		t.Errorf("ETA = %s out of range", snap.ETA)
	}

	p.Observe(progress.ProgressUpdate{RunIndex: 1, Value: 1})
	p.Observe(progress.ProgressUpdate{RunIndex: 0, Value: 1})
	if got := p.Average(); got != 1 {
		t.Errorf("Average() = %g with both lanes done, want 1", got)
	}
	if got := p.ETA(); got != 0 {
		t.Errorf("ETA() = %s with both lanes done, want 0", got)
	}
}

func TestDiscardProgressReturnsOnClose(t *testing.T) {
	t.Parallel()
	ch := make(chan progress.ProgressUpdate, 3)
	for i := range 3 {
		ch <- progress.ProgressUpdate{RunIndex: i % 2, Value: float64(i) / 3}
	}
	close(ch)

	done := make(chan struct{})
	go func() {
		DiscardProgress(ch)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("DiscardProgress did not return after close")
	}
	if len(ch) != 0 {
		t.Errorf("%d updates left unread", len(ch))
	}
}
