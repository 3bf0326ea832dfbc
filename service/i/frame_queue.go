package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/google/uuid"
)

// FrameQueue keeps the rendered frames of a run, ordered by tick, until a
// viewer drains them.
type FrameQueue interface {
	// Push appends the frame for a tick.
	Push(ctx context.Context, runID uuid.UUID, frame dmn.Frame) error

	// PopOldest removes and returns up to amount frames with the lowest ticks.
	PopOldest(ctx context.Context, runID uuid.UUID, amount int64) ([]dmn.Frame, error)

	// Count returns the number of frames waiting for a run.
	Count(ctx context.Context, runID uuid.UUID) int64
}
