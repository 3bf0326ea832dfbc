package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/google/uuid"
)

// Explorer runs explorations and serves their history.
type Explorer interface {
	// Explore parses the maze in the request, walks it and stores the run.
	Explore(ctx context.Context, req dmn.ExploreRequest) (*dmn.Run, error)

	// Run returns a stored run.
	Run(id uuid.UUID) (*dmn.Run, error)

	// Frames drains up to amount replay frames of a run.
	Frames(ctx context.Context, id uuid.UUID, amount int64) ([]dmn.Frame, error)
}
