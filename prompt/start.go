// Package prompt asks a person at the console for a custom start position.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beka-birhanu/maze-walker/maze"
)

// ErrInputClosed is returned when input ends in the middle of a coordinate.
var ErrInputClosed = errors.New("input closed before a start position was entered")

// StartPrompt reads a start position from in and writes questions to out.
type StartPrompt struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewStartPrompt creates a prompt over the given streams.
func NewStartPrompt(in io.Reader, out io.Writer) *StartPrompt {
	return &StartPrompt{in: bufio.NewScanner(in), out: out}
}

// Ask offers to change the start position. It returns false when the answer
// is anything but "y". Otherwise it keeps asking until the coordinate is
// inside g and not a wall.
func (p *StartPrompt) Ask(g *maze.Grid) (maze.Coordinate, bool, error) {
	fmt.Fprintln(p.out, "Would like to set the starting location of the character? y/n")
	answer, ok := p.readLine()
	if !ok || !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return maze.Coordinate{}, false, nil
	}

	for {
		x, err := p.readAxis("X", g.Width())
		if err != nil {
			return maze.Coordinate{}, false, err
		}
		y, err := p.readAxis("Y", g.Height())
		if err != nil {
			return maze.Coordinate{}, false, err
		}

		c := maze.Coordinate{X: x, Y: y}
		if m, _ := g.Get(c); m == maze.Wall {
			fmt.Fprintf(p.out, "Entered coordinates %s leads to a wall!\n", c)
			continue
		}
		return c, true, nil
	}
}

func (p *StartPrompt) readAxis(axis string, size int) (int, error) {
	for {
		fmt.Fprintf(p.out, "Enter the %s coordinate:\n", axis)
		input, ok := p.readLine()
		if !ok {
			return 0, ErrInputClosed
		}

		v, err := strconv.Atoi(strings.TrimSpace(input))
		if err != nil {
			fmt.Fprintf(p.out, "%q is not a number!\n", input)
			continue
		}
		if v < 0 || v > size-1 {
			fmt.Fprintf(p.out, "%d is outside of the maze's %s boundaries! Only numbers between 0 and %d are accepted.\n", v, axis, size-1)
			continue
		}
		return v, nil
	}
}

func (p *StartPrompt) readLine() (string, bool) {
	if !p.in.Scan() {
		return "", false
	}
	return p.in.Text(), true
}
