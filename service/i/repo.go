package i

import (
	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/google/uuid"
)

// RunRepo defines the interface for exploration run persistence.
type RunRepo interface {
	// Save inserts or updates a run in the repository.
	Save(run *dmn.Run) error

	// ByID retrieves a run by its unique ID.
	// Returns dmn.ErrRunNotFound if no run has that ID.
	ByID(id uuid.UUID) (*dmn.Run, error)
}
