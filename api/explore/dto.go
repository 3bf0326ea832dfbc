// Package exploreapi exposes maze explorations over HTTP.
package exploreapi

import (
	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/beka-birhanu/maze-walker/maze"
)

// ExploreRequest asks for a new exploration.
type ExploreRequest struct {
	Name  string    `json:"name"`
	Maze  string    `json:"maze" binding:"required"`
	Start *StartDTO `json:"start"`
}

// StartDTO overrides the agent's starting cell.
type StartDTO struct {
	X *int `json:"x" binding:"required"`
	Y *int `json:"y" binding:"required"`
}

// FramesResponse carries the drained replay frames of a run.
type FramesResponse struct {
	Frames []dmn.Frame `json:"frames"`
}

func (r *ExploreRequest) toDomain() dmn.ExploreRequest {
	req := dmn.ExploreRequest{Name: r.Name, Maze: r.Maze}
	if r.Start != nil {
		req.Start = &maze.Coordinate{X: *r.Start.X, Y: *r.Start.Y}
	}
	return req
}
