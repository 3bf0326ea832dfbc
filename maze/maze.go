/*
Package maze models a rectangular grid maze made of marker cells.

A Grid stores Wall, Corridor, Agent and Visited markers in row-major order and
keeps its dimensions fixed after construction. A CorridorSet tracks the cells
that are still traversable. Parse and Load build a Grid from the textual maze
format, and Relocate moves the agent to a different start cell.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfBounds     = errors.New("coordinate out of maze bounds")
	ErrLoad            = errors.New("maze could not be loaded")
	ErrMissingAgent    = errors.New("agent marker not found in maze")
	ErrInvalidOverride = errors.New("start position leads to a wall")
	ErrRaggedGrid      = errors.New("maze rows have different lengths")
)

// Grid is a rectangular array of cell markers.
type Grid struct {
	width  int
	height int
	cells  []Marker
}

// NewGrid builds a grid from rows of markers. The width is taken from the
// first row and every other row must match it.
func NewGrid(rows [][]Marker) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: maze has no cells", ErrLoad)
	}

	width := len(rows[0])
	cells := make([]Marker, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedGrid, y, len(row), width)
		}
		cells = append(cells, row...)
	}

	return &Grid{
		width:  width,
		height: len(rows),
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBound reports whether c lies inside the grid.
func (g *Grid) InBound(c Coordinate) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// OnBoundary reports whether c lies on the outermost row or column.
func (g *Grid) OnBoundary(c Coordinate) bool {
	return c.X == 0 || c.X == g.width-1 || c.Y == 0 || c.Y == g.height-1
}

// Get returns the marker at c.
func (g *Grid) Get(c Coordinate) (Marker, error) {
	if !g.InBound(c) {
		return "", fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	return g.cells[g.index(c)], nil
}

// Set replaces the marker at c.
func (g *Grid) Set(c Coordinate, m Marker) error {
	if !g.InBound(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	g.cells[g.index(c)] = m
	return nil
}

// Find returns the first cell holding m, scanning rows top to bottom.
func (g *Grid) Find(m Marker) (Coordinate, bool) {
	for i, cell := range g.cells {
		if cell == m {
			return Coordinate{X: i % g.width, Y: i / g.width}, true
		}
	}
	return Coordinate{}, false
}

// Rows returns a copy of the grid contents, one slice per row.
func (g *Grid) Rows() [][]Marker {
	rows := make([][]Marker, g.height)
	for y := range rows {
		rows[y] = make([]Marker, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// String renders the grid as space separated marker rows.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(g.cells[y*g.width+x]))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (g *Grid) index(c Coordinate) int {
	return c.Y*g.width + c.X
}
