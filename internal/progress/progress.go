package progress

import (
	"sync"

	"github.com/rs/zerolog"
)

// ProgressUpdate is a progress sample from one run.
type ProgressUpdate struct {
	// RunIndex identifies the run among those started together.
	RunIndex int
	// Value is the fraction of settled indices, from 0.0 to 1.0.
	Value float64
}

// ProgressCallback receives the progress of a single run.
type ProgressCallback func(progress float64)

// ProgressObserver is notified of progress from any run it is registered for.
type ProgressObserver interface {
	Update(runIndex int, progress float64)
}

// ProgressSubject holds a set of observers and notifies them.
type ProgressSubject struct {
	mu        sync.RWMutex
	observers []ProgressObserver
}

// NewProgressSubject returns a subject without observers.
func NewProgressSubject() *ProgressSubject {
	return &ProgressSubject{}
}

// Register adds an observer. Nil observers are ignored.
func (s *ProgressSubject) Register(o ProgressObserver) {
	if o == nil {
		return
	}
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()
}

// Unregister removes the first occurrence of o.
func (s *ProgressSubject) Unregister(o ProgressObserver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.observers {
		if existing == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// Notify forwards a progress value to every registered observer.
func (s *ProgressSubject) Notify(runIndex int, progress float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.observers {
		o.Update(runIndex, progress)
	}
}

// ObserverCount returns the number of registered observers.
func (s *ProgressSubject) ObserverCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.observers)
}

// Freeze returns a callback bound to runIndex that notifies the observers
// registered at the time of the call. Observers registered later are not
// reached, so the callback never takes the subject's lock.
func (s *ProgressSubject) Freeze(runIndex int) ProgressCallback {
	s.mu.RLock()
	snapshot := make([]ProgressObserver, len(s.observers))
	copy(snapshot, s.observers)
	s.mu.RUnlock()
	return func(progress float64) {
		for _, o := range snapshot {
			o.Update(runIndex, progress)
		}
	}
}

// ChannelObserver forwards updates to a channel without ever blocking the
// sender. Updates are dropped while the channel is full, except a final 1.0
// which is always delivered.
type ChannelObserver struct {
	ch chan<- ProgressUpdate
}

// NewChannelObserver creates an observer writing to ch.
func NewChannelObserver(ch chan<- ProgressUpdate) *ChannelObserver {
	return &ChannelObserver{ch: ch}
}

// Update implements ProgressObserver.
func (o *ChannelObserver) Update(runIndex int, progress float64) {
	if o.ch == nil {
		return
	}
	update := ProgressUpdate{RunIndex: runIndex, Value: progress}
	if progress >= 1.0 {
		o.ch <- update
		return
	}
	select {
	case o.ch <- update:
	default:
	}
}

// LoggingObserver logs progress every time a run crosses another threshold
// step, e.g. every 25% with a threshold of 0.25.
type LoggingObserver struct {
	logger    zerolog.Logger
	threshold float64

	mu   sync.Mutex
	last map[int]float64
}

// NewLoggingObserver creates a logging observer. A threshold outside (0, 1]
// falls back to 0.1.
func NewLoggingObserver(logger zerolog.Logger, threshold float64) *LoggingObserver {
	if threshold <= 0 || threshold > 1 {
		threshold = 0.1
	}
	return &LoggingObserver{logger: logger, threshold: threshold, last: make(map[int]float64)}
}

// Update implements ProgressObserver.
func (o *LoggingObserver) Update(runIndex int, progress float64) {
	o.mu.Lock()
	last, seen := o.last[runIndex]
	report := !seen || progress-last >= o.threshold || (progress >= 1.0 && last < 1.0)
	if report {
		o.last[runIndex] = progress
	}
	o.mu.Unlock()
	if report {
		o.logger.Debug().Int("run", runIndex).Float64("progress", progress).Msg("sort progress")
	}
}

// NoOpObserver ignores every update.
type NoOpObserver struct{}

// NewNoOpObserver returns a NoOpObserver.
func NewNoOpObserver() NoOpObserver { return NoOpObserver{} }

// Update implements ProgressObserver.
func (NoOpObserver) Update(int, float64) {}
