package viz

import (
	"context"
	"sync"
	"time"
)

// Recorder collects the events of one or more lanes without pacing them.
// Each lane keeps a virtual clock advanced by the duration of every
// suspension point; operations grouped with All overlap, so a group costs
// as much as its longest member. It is safe for concurrent use by several
// runs.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	lanes  map[string]*recordedLane
}

type recordedLane struct {
	book  markerBook
	clock time.Duration
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{lanes: make(map[string]*recordedLane)}
}

// Lane returns a Sink that records into r under the given lane name.
func (r *Recorder) Lane(name string) Sink {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.lanes[name]; !ok {
		r.lanes[name] = &recordedLane{}
	}
	return &recorderLane{rec: r, name: name}
}

// Events returns a copy of all recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// LaneEvents returns the events of a single lane in arrival order.
func (r *Recorder) LaneEvents(lane string) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Event
	for _, e := range r.events {
		if e.Lane == lane {
			out = append(out, e)
		}
	}
	return out
}

// Live returns the number of markers of lane that were created and not yet removed.
func (r *Recorder) Live(lane string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.lanes[lane]; ok {
		return len(l.book.live)
	}
	return 0
}

// Elapsed returns the virtual time lane has spent in suspension points: the
// wall time the same calls would take on a Paced sink at speed 1.
func (r *Recorder) Elapsed(lane string) time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.lanes[lane]; ok {
		return l.clock
	}
	return 0
}

// Count returns how many events of the given kind lane produced.
func (r *Recorder) Count(lane string, kind EventKind) int {
	n := 0
	for _, e := range r.LaneEvents(lane) {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

type recorderLane struct {
	rec  *Recorder
	name string
}

var (
	_ Sink    = (*recorderLane)(nil)
	_ Grouper = (*recorderLane)(nil)
)

// suspend records e and advances the lane clock by its duration.
func (l *recorderLane) suspend(ctx context.Context, e Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	lane := l.rec.lanes[l.name]
	if e.Kind == EventMarkerMoved {
		e.MarkerKind = lane.book.kind(e.Marker)
	}
	lane.clock += e.Duration
	l.rec.events = append(l.rec.events, e)
	return nil
}

func (l *recorderLane) setClock(d time.Duration) {
	l.rec.mu.Lock()
	l.rec.lanes[l.name].clock = d
	l.rec.mu.Unlock()
}

func (l *recorderLane) CreateMarker(kind MarkerKind, index int) MarkerHandle {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	h := l.rec.lanes[l.name].book.create(kind)
	l.rec.events = append(l.rec.events, Event{Lane: l.name, Kind: EventMarkerCreated, Marker: h, MarkerKind: kind, Index: index})
	return h
}

func (l *recorderLane) MoveMarker(ctx context.Context, h MarkerHandle, to int, d time.Duration) error {
	return l.suspend(ctx, Event{Lane: l.name, Kind: EventMarkerMoved, Marker: h, Index: to, Duration: d})
}

func (l *recorderLane) SetLabel(ctx context.Context, slot, value int, d time.Duration) error {
	return l.suspend(ctx, Event{Lane: l.name, Kind: EventLabelSet, Index: slot, Value: value, Duration: d})
}

func (l *recorderLane) RemoveMarker(h MarkerHandle) {
	l.rec.mu.Lock()
	defer l.rec.mu.Unlock()
	if kind, ok := l.rec.lanes[l.name].book.remove(h); ok {
		l.rec.events = append(l.rec.events, Event{Lane: l.name, Kind: EventMarkerRemoved, Marker: h, MarkerKind: kind})
	}
}

func (l *recorderLane) Wait(ctx context.Context, d time.Duration) error {
	return l.suspend(ctx, Event{Lane: l.name, Kind: EventWait, Duration: d})
}

// All records the ops one after the other, keeping the event order
// deterministic, but rewinds the clock before each of them so the group
// ends when its longest op does.
func (l *recorderLane) All(ctx context.Context, ops ...func(context.Context) error) error {
	start := l.rec.Elapsed(l.name)
	end := start
	for _, op := range ops {
		l.setClock(start)
		if err := op(ctx); err != nil {
			return err
		}
		end = max(end, l.rec.Elapsed(l.name))
	}
	l.setClock(end)
	return nil
}
