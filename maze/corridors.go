package maze

// CorridorSet holds the coordinates of every cell still marked Corridor.
// It is filled once and only shrinks afterwards.
type CorridorSet struct {
	cells map[Coordinate]struct{}
}

// NewCorridorSet scans g and collects every Corridor cell.
func NewCorridorSet(g *Grid) *CorridorSet {
	cells := make(map[Coordinate]struct{})
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coordinate{X: x, Y: y}
			if g.cells[g.index(c)] == Corridor {
				cells[c] = struct{}{}
			}
		}
	}
	return &CorridorSet{cells: cells}
}

// Contains reports whether c is still a corridor.
func (s *CorridorSet) Contains(c Coordinate) bool {
	_, ok := s.cells[c]
	return ok
}

// Remove drops c from the set. Removing an absent coordinate is a no-op.
func (s *CorridorSet) Remove(c Coordinate) {
	delete(s.cells, c)
}

// Len returns the number of corridors left.
func (s *CorridorSet) Len() int {
	return len(s.cells)
}
