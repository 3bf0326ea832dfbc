package maze

import "fmt"

// Marker is the state of a single cell in the grid.
type Marker string

// Cell markers as they appear in a maze source.
const (
	Wall     Marker = "1" // Wall is never traversable.
	Corridor Marker = "0" // Corridor is traversable and not yet visited.
	Agent    Marker = "2" // Agent marks the explorer's current cell.
	Visited  Marker = "x" // Visited is the breadcrumb left on a departed cell.
)

// String returns the marker token.
func (m Marker) String() string {
	return string(m)
}

// Coordinate is a cell position: X is the column, Y is the row.
type Coordinate struct {
	X int `json:"x" bson:"x"`
	Y int `json:"y" bson:"y"`
}

// String returns the coordinate formatted as (x:X, y:Y).
func (c Coordinate) String() string {
	return fmt.Sprintf("(x:%d, y:%d)", c.X, c.Y)
}
