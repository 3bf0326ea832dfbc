// Package domain holds the records exchanged between the service, storage and API layers.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/maze-walker/explorer"
	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/google/uuid"
)

var ErrRunNotFound = errors.New("exploration run not found")

// Run is the stored outcome of one exploration.
type Run struct {
	ID         uuid.UUID         `bson:"_id" json:"id"`
	Name       string            `bson:"name" json:"name"`
	Outcome    string            `bson:"outcome" json:"outcome"`
	Truncated  bool              `bson:"truncated" json:"truncated"` // stopped by the tick limit
	Width      int               `bson:"width" json:"width"`
	Height     int               `bson:"height" json:"height"`
	Start      maze.Coordinate   `bson:"start" json:"start"`
	End        maze.Coordinate   `bson:"end" json:"end"`
	Path       []maze.Coordinate `bson:"path" json:"path"`
	Ticks      int               `bson:"ticks" json:"ticks"`
	Steps      int               `bson:"steps" json:"steps"`
	Backtracks int               `bson:"backtracks" json:"backtracks"`
	StartedAt  time.Time         `bson:"startedAt" json:"started_at"`
	FinishedAt time.Time         `bson:"finishedAt" json:"finished_at"`
}

// RunConfig holds what is needed to build a Run from an engine result.
type RunConfig struct {
	ID         uuid.UUID
	Name       string
	Width      int
	Height     int
	Result     explorer.Result
	Truncated  bool
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewRun creates a Run record from a finished or truncated exploration.
func NewRun(c RunConfig) *Run {
	return &Run{
		ID:         c.ID,
		Name:       c.Name,
		Outcome:    c.Result.State.String(),
		Truncated:  c.Truncated,
		Width:      c.Width,
		Height:     c.Height,
		Start:      c.Result.Start,
		End:        c.Result.Position,
		Path:       c.Result.Path,
		Ticks:      c.Result.Ticks,
		Steps:      c.Result.Steps,
		Backtracks: c.Result.Backtracks,
		StartedAt:  c.StartedAt,
		FinishedAt: c.FinishedAt,
	}
}

// Exited reports whether the agent reached the boundary.
func (r *Run) Exited() bool {
	return r.Outcome == explorer.ExitedMaze.String()
}

// Frame is one rendered snapshot kept for replay.
type Frame struct {
	Tick int    `json:"tick"`
	Text string `json:"text"`
}

// ExploreRequest asks for an exploration of a textual maze.
type ExploreRequest struct {
	Name  string
	Maze  string           // Maze source, header line included
	Start *maze.Coordinate // Optional start override
}
