package explorer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-walker/maze"
)

// State is the exploration state machine.
type State int

const (
	Exploring  State = iota // Still searching.
	ExitedMaze              // Agent stands on a boundary cell.
	NoExit                  // No move left and no history to retreat along.
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Exploring:
		return "Exploring"
	case ExitedMaze:
		return "ExitedMaze"
	case NoExit:
		return "NoExit"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further tick can change the state.
func (s State) Terminal() bool {
	return s == ExitedMaze || s == NoExit
}

// ErrTickLimit is returned by Run when the configured tick budget runs out
// before the exploration terminates.
var ErrTickLimit = errors.New("exploration tick limit reached")

// Options defines parameters for an exploration run.
type Options struct {
	Sink     Sink
	Delay    time.Duration
	MaxTicks int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithSink sets the sink that receives a snapshot after every tick.
func WithSink(sink Sink) Option {
	return func(o *Options) { o.Sink = sink }
}

// WithDelay pauses Run for d between ticks.
func WithDelay(d time.Duration) Option {
	return func(o *Options) { o.Delay = d }
}

// WithMaxTicks stops Run with ErrTickLimit after n ticks. Zero means no limit.
func WithMaxTicks(n int) Option {
	return func(o *Options) { o.MaxTicks = n }
}

// Result summarizes an exploration.
type Result struct {
	State         State
	Start         maze.Coordinate
	Position      maze.Coordinate
	Path          []maze.Coordinate
	Ticks         int
	Steps         int
	Backtracks    int
	CorridorsLeft int
}

// Engine owns the grid, the corridor set, the agent position and the path
// stack for a single exploration.
type Engine struct {
	grid      *maze.Grid
	corridors *maze.CorridorSet
	start     maze.Coordinate
	position  maze.Coordinate
	path      []maze.Coordinate
	state     State
	opts      Options

	ticks      int
	steps      int
	backtracks int
}

// New creates an engine for grid with the agent at start. The start cell must
// hold the Agent marker. The corridor set is built from grid here, so any
// start relocation has to happen before New is called.
func New(grid *maze.Grid, start maze.Coordinate, options ...Option) (*Engine, error) {
	opts := Options{Sink: discard{}}
	for _, option := range options {
		option(&opts)
	}
	if opts.Sink == nil {
		opts.Sink = discard{}
	}

	marker, err := grid.Get(start)
	if err != nil {
		return nil, err
	}
	if marker != maze.Agent {
		return nil, fmt.Errorf("%w: start %s holds %q", maze.ErrMissingAgent, start, marker)
	}

	return &Engine{
		grid:      grid,
		corridors: maze.NewCorridorSet(grid),
		start:     start,
		position:  start,
		path:      []maze.Coordinate{start},
		state:     Exploring,
		opts:      opts,
	}, nil
}

// State returns the current state.
func (e *Engine) State() State {
	return e.state
}

// Position returns the agent position.
func (e *Engine) Position() maze.Coordinate {
	return e.position
}

// Path returns a copy of the path stack, oldest entry first.
func (e *Engine) Path() []maze.Coordinate {
	path := make([]maze.Coordinate, len(e.path))
	copy(path, e.path)
	return path
}

// Tick advances the exploration by one transition and returns the new state.
// Calling Tick after a terminal state is a no-op.
func (e *Engine) Tick() (State, error) {
	if e.state.Terminal() {
		return e.state, nil
	}

	if e.grid.OnBoundary(e.position) {
		e.state = ExitedMaze
		return e.state, nil
	}

	e.ticks++
	if next, ok := e.nextStep(); ok {
		if err := e.moveTo(next); err != nil {
			return e.state, err
		}
		e.steps++
	} else if err := e.backtrack(); err != nil {
		return e.state, err
	}

	if err := e.emit(); err != nil {
		return e.state, err
	}
	return e.state, nil
}

// Run emits the initial snapshot and ticks until the exploration reaches a
// terminal state, the context is done or the tick limit is hit.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	if err := e.emit(); err != nil {
		return e.Result(), err
	}

	for {
		if err := ctx.Err(); err != nil {
			return e.Result(), err
		}

		state, err := e.Tick()
		if err != nil {
			return e.Result(), err
		}
		if state.Terminal() {
			return e.Result(), nil
		}

		if e.opts.MaxTicks > 0 && e.ticks >= e.opts.MaxTicks {
			return e.Result(), ErrTickLimit
		}

		if e.opts.Delay > 0 {
			select {
			case <-ctx.Done():
				return e.Result(), ctx.Err()
			case <-time.After(e.opts.Delay):
			}
		}
	}
}

// Result returns a summary of the exploration so far.
func (e *Engine) Result() Result {
	return Result{
		State:         e.state,
		Start:         e.start,
		Position:      e.position,
		Path:          e.Path(),
		Ticks:         e.ticks,
		Steps:         e.steps,
		Backtracks:    e.backtracks,
		CorridorsLeft: e.corridors.Len(),
	}
}

// nextStep returns the first neighbour, in step order, that passes its range
// check and is still a corridor.
func (e *Engine) nextStep() (maze.Coordinate, bool) {
	for _, c := range stepOrder {
		if !c.allowed(e.position, e.grid.Width(), e.grid.Height()) {
			continue
		}
		next := c.next(e.position)
		if e.corridors.Contains(next) {
			return next, true
		}
	}
	return maze.Coordinate{}, false
}

// backtrack retreats to the previous path entry. With a single entry left
// there is nowhere to go and the exploration ends as NoExit.
func (e *Engine) backtrack() error {
	if len(e.path) <= 1 {
		e.state = NoExit
		return nil
	}

	e.path = e.path[:len(e.path)-1]
	if err := e.moveTo(e.path[len(e.path)-1]); err != nil {
		return err
	}
	e.path = e.path[:len(e.path)-1]
	e.backtracks++
	return nil
}

// moveTo leaves a breadcrumb on the current cell and places the agent on c.
func (e *Engine) moveTo(c maze.Coordinate) error {
	if err := e.grid.Set(e.position, maze.Visited); err != nil {
		return fmt.Errorf("marking breadcrumb: %w", err)
	}
	if err := e.grid.Set(c, maze.Agent); err != nil {
		return fmt.Errorf("moving agent: %w", err)
	}

	e.position = c
	e.corridors.Remove(c)
	e.path = append(e.path, c)
	return nil
}

func (e *Engine) emit() error {
	snapshot := Snapshot{
		Tick:     e.ticks,
		State:    e.state,
		Position: e.position,
		Rows:     e.grid.Rows(),
	}
	if err := e.opts.Sink.Render(snapshot); err != nil {
		return fmt.Errorf("rendering tick %d: %w", e.ticks, err)
	}
	return nil
}
