package viz

import (
	"context"
	"sync"
	"time"
)

// Paced is a Sink that holds each suspension point for its requested
// duration divided by Speed, and reports every call to an Observer.
// A Speed of zero or less disables sleeping entirely.
type Paced struct {
	lane    string
	speed   float64
	observe Observer

	mu   sync.Mutex
	book markerBook
}

var _ Sink = (*Paced)(nil)

// NewPaced creates a paced sink for lane. observe may be nil.
func NewPaced(lane string, speed float64, observe Observer) *Paced {
	if observe == nil {
		observe = func(Event) {}
	}
	return &Paced{lane: lane, speed: speed, observe: observe}
}

// CreateMarker implements Sink.
func (p *Paced) CreateMarker(kind MarkerKind, index int) MarkerHandle {
	p.mu.Lock()
	h := p.book.create(kind)
	p.mu.Unlock()
	p.observe(Event{Lane: p.lane, Kind: EventMarkerCreated, Marker: h, MarkerKind: kind, Index: index})
	return h
}

// MoveMarker implements Sink.
func (p *Paced) MoveMarker(ctx context.Context, h MarkerHandle, to int, d time.Duration) error {
	p.mu.Lock()
	kind := p.book.kind(h)
	p.mu.Unlock()
	p.observe(Event{Lane: p.lane, Kind: EventMarkerMoved, Marker: h, MarkerKind: kind, Index: to, Duration: d})
	return p.sleep(ctx, d)
}

// SetLabel implements Sink.
func (p *Paced) SetLabel(ctx context.Context, slot, value int, d time.Duration) error {
	p.observe(Event{Lane: p.lane, Kind: EventLabelSet, Index: slot, Value: value, Duration: d})
	return p.sleep(ctx, d)
}

// RemoveMarker implements Sink.
func (p *Paced) RemoveMarker(h MarkerHandle) {
	p.mu.Lock()
	kind, ok := p.book.remove(h)
	p.mu.Unlock()
	if ok {
		p.observe(Event{Lane: p.lane, Kind: EventMarkerRemoved, Marker: h, MarkerKind: kind})
	}
}

// Wait implements Sink.
func (p *Paced) Wait(ctx context.Context, d time.Duration) error {
	p.observe(Event{Lane: p.lane, Kind: EventWait, Duration: d})
	return p.sleep(ctx, d)
}

// Scale converts a requested animation duration to wall-clock time.
func (p *Paced) Scale(d time.Duration) time.Duration {
	if p.speed <= 0 || d <= 0 {
		return 0
	}
	return time.Duration(float64(d) / p.speed)
}

func (p *Paced) sleep(ctx context.Context, d time.Duration) error {
	wall := p.Scale(d)
	if wall == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(wall)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
