package explorer

import "github.com/beka-birhanu/maze-walker/maze"

// Direction names a single cell move.
type Direction int

const (
	Left  Direction = iota // x-1
	Right                  // x+1
	Down                   // y-1
	Up                     // y+1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Up:
		return "Up"
	default:
		return "Unknown"
	}
}

// candidate describes one direction of the step search. allowed is the range
// check on the moving axis; Right and Up accept one cell past the edge and
// rely on corridor membership to reject it.
type candidate struct {
	direction Direction
	next      func(p maze.Coordinate) maze.Coordinate
	allowed   func(p maze.Coordinate, width, height int) bool
}

// stepOrder is the tie-break order for choosing the next cell.
var stepOrder = []candidate{
	{direction: Left, next: leftOf, allowed: canGoLeft},
	{direction: Right, next: rightOf, allowed: canGoRight},
	{direction: Down, next: downOf, allowed: canGoDown},
	{direction: Up, next: upOf, allowed: canGoUp},
}

func leftOf(p maze.Coordinate) maze.Coordinate { return maze.Coordinate{X: p.X - 1, Y: p.Y} }
func rightOf(p maze.Coordinate) maze.Coordinate { return maze.Coordinate{X: p.X + 1, Y: p.Y} }
func downOf(p maze.Coordinate) maze.Coordinate { return maze.Coordinate{X: p.X, Y: p.Y - 1} }
func upOf(p maze.Coordinate) maze.Coordinate { return maze.Coordinate{X: p.X, Y: p.Y + 1} }

func canGoLeft(p maze.Coordinate, _, _ int) bool { return p.X-1 >= 0 }
func canGoRight(p maze.Coordinate, width, _ int) bool { return p.X+1 <= width }
func canGoDown(p maze.Coordinate, _, _ int) bool { return p.Y-1 >= 0 }
func canGoUp(p maze.Coordinate, _, height int) bool { return p.Y+1 <= height }
