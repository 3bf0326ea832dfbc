package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// Parse reads a maze source. The first line carries metadata and is skipped;
// every following non-blank line is one row of space separated markers.
// It returns the grid and the first cell holding the Agent marker.
func Parse(r io.Reader) (*Grid, Coordinate, error) {
	scanner := bufio.NewScanner(r)

	// Skip first line, it only holds the dimensions.
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, Coordinate{}, fmt.Errorf("%w: %v", ErrLoad, err)
		}
		return nil, Coordinate{}, fmt.Errorf("%w: source is empty", ErrLoad)
	}

	var rows [][]Marker
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens := strings.Split(line, " ")
		row := make([]Marker, len(tokens))
		for i, token := range tokens {
			row[i] = Marker(token)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, Coordinate{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}

	if len(rows) < 1 {
		return nil, Coordinate{}, fmt.Errorf("%w: source has no maze", ErrLoad)
	}

	grid, err := NewGrid(rows)
	if err != nil {
		return nil, Coordinate{}, err
	}

	start, ok := grid.Find(Agent)
	if !ok {
		return nil, Coordinate{}, fmt.Errorf("%w: character marked %s not found", ErrMissingAgent, Agent)
	}

	return grid, start, nil
}

// Load opens the maze file at path and parses it.
func Load(path string) (*Grid, Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, Coordinate{}, fmt.Errorf("%w: maze file %q not found", ErrLoad, path)
		}
		return nil, Coordinate{}, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	return Parse(f)
}

// Relocate moves the Agent marker to c and turns the previous agent cell back
// into a Corridor. Walls are rejected with ErrInvalidOverride and leave the
// grid untouched.
func Relocate(g *Grid, c Coordinate) (Coordinate, error) {
	target, err := g.Get(c)
	if err != nil {
		return Coordinate{}, err
	}
	if target == Wall {
		return Coordinate{}, fmt.Errorf("%w: entered coordinates %s", ErrInvalidOverride, c)
	}

	current, ok := g.Find(Agent)
	if !ok {
		return Coordinate{}, ErrMissingAgent
	}

	_ = g.Set(current, Corridor)
	_ = g.Set(c, Agent)
	return c, nil
}
