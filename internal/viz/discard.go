package viz

import (
	"context"
	"time"
)

// Discard is a Sink that renders nothing and never pauses.
// Its suspension points still honor cancellation.
var Discard Sink = discard{}

type discard struct{}

func (discard) CreateMarker(MarkerKind, int) MarkerHandle { return 0 }

func (discard) MoveMarker(ctx context.Context, _ MarkerHandle, _ int, _ time.Duration) error {
	return ctx.Err()
}

func (discard) SetLabel(ctx context.Context, _, _ int, _ time.Duration) error { return ctx.Err() }

func (discard) RemoveMarker(MarkerHandle) {}

func (discard) Wait(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func (discard) All(ctx context.Context, ops ...func(context.Context) error) error {
	return Sequential(ctx, ops...)
}
