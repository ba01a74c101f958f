package viz

import (
	"context"
	"time"

	"github.com/agbru/partviz/internal/logging"
)

// Logged decorates a Sink with one debug log entry per call.
type Logged struct {
	next   Sink
	lane   string
	logger logging.Logger
}

var (
	_ Sink    = (*Logged)(nil)
	_ Grouper = (*Logged)(nil)
)

// NewLogged wraps next so that every call is logged under lane.
func NewLogged(next Sink, lane string, logger logging.Logger) *Logged {
	return &Logged{next: next, lane: lane, logger: logger}
}

func (l *Logged) CreateMarker(kind MarkerKind, index int) MarkerHandle {
	h := l.next.CreateMarker(kind, index)
	l.logger.Debug("marker created",
		logging.String("lane", l.lane), logging.String("kind", kind.String()),
		logging.Int("marker", int(h)), logging.Int("index", index))
	return h
}

func (l *Logged) MoveMarker(ctx context.Context, h MarkerHandle, to int, d time.Duration) error {
	l.logger.Debug("marker moved",
		logging.String("lane", l.lane), logging.Int("marker", int(h)),
		logging.Int("to", to), logging.Duration("duration", d))
	return l.next.MoveMarker(ctx, h, to, d)
}

func (l *Logged) SetLabel(ctx context.Context, slot, value int, d time.Duration) error {
	l.logger.Debug("label set",
		logging.String("lane", l.lane), logging.Int("slot", slot),
		logging.Int("value", value), logging.Duration("duration", d))
	return l.next.SetLabel(ctx, slot, value, d)
}

func (l *Logged) RemoveMarker(h MarkerHandle) {
	l.logger.Debug("marker removed", logging.String("lane", l.lane), logging.Int("marker", int(h)))
	l.next.RemoveMarker(h)
}

func (l *Logged) Wait(ctx context.Context, d time.Duration) error {
	l.logger.Debug("wait", logging.String("lane", l.lane), logging.Duration("duration", d))
	return l.next.Wait(ctx, d)
}

// All defers to the wrapped sink's grouping so that decorating a sink never
// changes how simultaneous animations are scheduled.
func (l *Logged) All(ctx context.Context, ops ...func(context.Context) error) error {
	return All(ctx, l.next, ops...)
}
