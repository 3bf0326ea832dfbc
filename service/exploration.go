package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/beka-birhanu/maze-walker/explorer"
	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/beka-birhanu/maze-walker/render"
	"github.com/beka-birhanu/maze-walker/service/i"
	"github.com/google/uuid"
)

const (
	defaultRunName     = "maze"
	defaultFrameAmount = 10
	maxFrameAmount     = 500
)

var ErrMissingLogger = errors.New("exploration service needs a logger")

// ExplorationService walks mazes and records the runs. The repo and the
// frame queue are optional; without them runs are only returned.
type ExplorationService struct {
	repo     i.RunRepo
	frames   i.FrameQueue
	logger   i.Logger
	sinks    []explorer.Sink
	delay    time.Duration
	maxTicks int
}

// Config holds the collaborators of an ExplorationService.
type Config struct {
	Repo     i.RunRepo       // Run history, may be nil
	Frames   i.FrameQueue    // Replay frames, may be nil
	Logger   i.Logger        // Required
	Sinks    []explorer.Sink // Extra sinks, e.g. the console
	Delay    time.Duration   // Pause between ticks
	MaxTicks int             // Tick budget per run, 0 for none
}

// NewExplorationService creates an ExplorationService.
func NewExplorationService(c *Config) (*ExplorationService, error) {
	if c.Logger == nil {
		return nil, ErrMissingLogger
	}

	return &ExplorationService{
		repo:     c.Repo,
		frames:   c.Frames,
		logger:   c.Logger,
		sinks:    c.Sinks,
		delay:    c.Delay,
		maxTicks: c.MaxTicks,
	}, nil
}

// Explore parses the maze text, applies the start override and runs it.
func (s *ExplorationService) Explore(ctx context.Context, req dmn.ExploreRequest) (*dmn.Run, error) {
	grid, start, err := maze.Parse(strings.NewReader(req.Maze))
	if err != nil {
		s.logger.Warning(fmt.Sprintf("Rejected maze %q: %s", req.Name, err))
		return nil, err
	}

	if req.Start != nil {
		start, err = maze.Relocate(grid, *req.Start)
		if err != nil {
			s.logger.Warning(fmt.Sprintf("Rejected start override for maze %q: %s", req.Name, err))
			return nil, err
		}
	}

	return s.ExploreGrid(ctx, req.Name, grid, start)
}

// ExploreGrid runs an exploration over an already loaded grid.
func (s *ExplorationService) ExploreGrid(ctx context.Context, name string, grid *maze.Grid, start maze.Coordinate) (*dmn.Run, error) {
	if name == "" {
		name = defaultRunName
	}
	id := uuid.New()

	sinks := append([]explorer.Sink{}, s.sinks...)
	if s.frames != nil {
		sinks = append(sinks, s.frameSink(ctx, id))
	}

	engine, err := explorer.New(grid, start,
		explorer.WithSink(explorer.MultiSink(sinks...)),
		explorer.WithDelay(s.delay),
		explorer.WithMaxTicks(s.maxTicks),
	)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Creating engine for run %s: %s", id, err))
		return nil, err
	}

	s.logger.Info(fmt.Sprintf("Exploring maze %q as run %s from %s", name, id, start))
	startedAt := time.Now().UTC()
	result, err := engine.Run(ctx)
	truncated := errors.Is(err, explorer.ErrTickLimit)
	if err != nil && !truncated {
		s.logger.Error(fmt.Sprintf("Run %s failed after %d ticks: %s", id, result.Ticks, err))
		return nil, err
	}

	run := dmn.NewRun(dmn.RunConfig{
		ID:         id,
		Name:       name,
		Width:      grid.Width(),
		Height:     grid.Height(),
		Result:     result,
		Truncated:  truncated,
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
	})

	if truncated {
		s.logger.Warning(fmt.Sprintf("Run %s hit the tick limit of %d", id, s.maxTicks))
	}
	s.logger.Info(fmt.Sprintf("Run %s finished as %s: %d steps, %d backtracks", id, run.Outcome, run.Steps, run.Backtracks))

	if s.repo != nil {
		if err := s.repo.Save(run); err != nil {
			s.logger.Error(fmt.Sprintf("Saving run %s: %s", id, err))
			return nil, err
		}
	}

	return run, nil
}

// Run returns a stored run.
func (s *ExplorationService) Run(id uuid.UUID) (*dmn.Run, error) {
	if s.repo == nil {
		return nil, dmn.ErrRunNotFound
	}
	return s.repo.ByID(id)
}

// Frames drains up to amount replay frames. Non-positive amounts use the
// default and large ones are capped.
func (s *ExplorationService) Frames(ctx context.Context, id uuid.UUID, amount int64) ([]dmn.Frame, error) {
	if s.frames == nil {
		return nil, nil
	}
	if amount <= 0 {
		amount = defaultFrameAmount
	}
	amount = min(amount, maxFrameAmount)

	frames, err := s.frames.PopOldest(ctx, id, amount)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Draining frames of run %s: %s", id, err))
		return nil, err
	}
	return frames, nil
}

// frameSink pushes rendered frames to the replay queue. Queue failures are
// logged and do not stop the exploration.
func (s *ExplorationService) frameSink(ctx context.Context, id uuid.UUID) explorer.Sink {
	return explorer.SinkFunc(func(snapshot explorer.Snapshot) error {
		frame := dmn.Frame{Tick: snapshot.Tick, Text: render.Frame(snapshot.Rows)}
		if err := s.frames.Push(ctx, id, frame); err != nil {
			s.logger.Warning(fmt.Sprintf("Queueing frame %d of run %s: %s", snapshot.Tick, id, err))
		}
		return nil
	})
}
