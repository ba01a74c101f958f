package viz

import (
	"fmt"
	"time"
)

// EventKind classifies an Event.
type EventKind int

const (
	EventMarkerCreated EventKind = iota
	EventMarkerMoved
	EventLabelSet
	EventMarkerRemoved
	EventWait
)

// String returns a short name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventMarkerCreated:
		return "create"
	case EventMarkerMoved:
		return "move"
	case EventLabelSet:
		return "label"
	case EventMarkerRemoved:
		return "remove"
	case EventWait:
		return "wait"
	}
	return "unknown"
}

// Event is one sink call, as seen by recorders and observers.
type Event struct {
	// Lane names the run that produced the event.
	Lane string
	Kind EventKind
	// Marker and MarkerKind are set for marker events.
	Marker     MarkerHandle
	MarkerKind MarkerKind
	// Index is the marker position or the relabeled slot.
	Index int
	// Value is the new label for EventLabelSet.
	Value    int
	Duration time.Duration
}

// String renders the event compactly, e.g. "lomuto move scan-j#2 -> 3 (300ms)".
func (e Event) String() string {
	switch e.Kind {
	case EventMarkerCreated:
		return fmt.Sprintf("%s create %s#%d @ %d", e.Lane, e.MarkerKind, e.Marker, e.Index)
	case EventMarkerMoved:
		return fmt.Sprintf("%s move %s#%d -> %d (%s)", e.Lane, e.MarkerKind, e.Marker, e.Index, e.Duration)
	case EventLabelSet:
		return fmt.Sprintf("%s label [%d] = %d (%s)", e.Lane, e.Index, e.Value, e.Duration)
	case EventMarkerRemoved:
		return fmt.Sprintf("%s remove %s#%d", e.Lane, e.MarkerKind, e.Marker)
	case EventWait:
		return fmt.Sprintf("%s wait %s", e.Lane, e.Duration)
	}
	return e.Lane + " unknown"
}

// Observer receives events emitted by a Paced sink.
type Observer func(Event)

// markerBook issues handles and remembers the kind of every live marker.
// Callers hold their own lock.
type markerBook struct {
	next MarkerHandle
	live map[MarkerHandle]MarkerKind
}

func (b *markerBook) create(kind MarkerKind) MarkerHandle {
	if b.live == nil {
		b.live = make(map[MarkerHandle]MarkerKind)
	}
	b.next++
	b.live[b.next] = kind
	return b.next
}

func (b *markerBook) kind(h MarkerHandle) MarkerKind { return b.live[h] }

func (b *markerBook) remove(h MarkerHandle) (MarkerKind, bool) {
	kind, ok := b.live[h]
	delete(b.live, h)
	return kind, ok
}
