package service

import (
	"context"
	"errors"
	"testing"

	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/beka-birhanu/maze-walker/explorer"
	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const deadEnds = "5 4\n1 1 1 1 1\n1 0 2 0 1\n1 1 0 1 1\n1 1 1 1 1\n"

const opening = "5 4\n1 1 1 1 1\n1 0 2 0 1\n1 1 0 1 1\n1 1 0 1 1\n"

type nopLogger struct{}

func (nopLogger) Info(string)    {}
func (nopLogger) Warning(string) {}
func (nopLogger) Error(string)   {}

type memoryRepo struct {
	runs map[uuid.UUID]*dmn.Run
	err  error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{runs: map[uuid.UUID]*dmn.Run{}}
}

func (m *memoryRepo) Save(run *dmn.Run) error {
	if m.err != nil {
		return m.err
	}
	m.runs[run.ID] = run
	return nil
}

func (m *memoryRepo) ByID(id uuid.UUID) (*dmn.Run, error) {
	run, ok := m.runs[id]
	if !ok {
		return nil, dmn.ErrRunNotFound
	}
	return run, nil
}

type memoryQueue struct {
	frames     map[uuid.UUID][]dmn.Frame
	pushErr    error
	lastAmount int64
}

func newMemoryQueue() *memoryQueue {
	return &memoryQueue{frames: map[uuid.UUID][]dmn.Frame{}}
}

func (q *memoryQueue) Push(_ context.Context, id uuid.UUID, f dmn.Frame) error {
	if q.pushErr != nil {
		return q.pushErr
	}
	q.frames[id] = append(q.frames[id], f)
	return nil
}

func (q *memoryQueue) PopOldest(_ context.Context, id uuid.UUID, amount int64) ([]dmn.Frame, error) {
	q.lastAmount = amount
	frames := q.frames[id]
	n := min(int(amount), len(frames))
	q.frames[id] = frames[n:]
	return frames[:n], nil
}

func (q *memoryQueue) Count(_ context.Context, id uuid.UUID) int64 {
	return int64(len(q.frames[id]))
}

func newService(t *testing.T, c Config) *ExplorationService {
	t.Helper()
	c.Logger = nopLogger{}
	s, err := NewExplorationService(&c)
	require.NoError(t, err)
	return s
}

func TestNewExplorationService(t *testing.T) {
	_, err := NewExplorationService(&Config{})
	assert.ErrorIs(t, err, ErrMissingLogger)
}

func TestExplore(t *testing.T) {
	t.Run("Records and stores a NoExit run", func(t *testing.T) {
		repo, queue := newMemoryRepo(), newMemoryQueue()
		s := newService(t, Config{Repo: repo, Frames: queue})

		run, err := s.Explore(context.Background(), dmn.ExploreRequest{Name: "dead-ends", Maze: deadEnds})
		require.NoError(t, err)
		assert.Equal(t, explorer.NoExit.String(), run.Outcome)
		assert.False(t, run.Exited())
		assert.Equal(t, 7, run.Ticks)
		assert.Equal(t, 3, run.Steps)
		assert.Equal(t, 3, run.Backtracks)
		assert.Equal(t, 5, run.Width)
		assert.Equal(t, 4, run.Height)
		assert.False(t, run.FinishedAt.Before(run.StartedAt))

		stored, err := s.Run(run.ID)
		require.NoError(t, err)
		assert.Equal(t, run, stored)

		frames := queue.frames[run.ID]
		require.Len(t, frames, 8)
		assert.Zero(t, frames[0].Tick)
		assert.Equal(t, 7, frames[7].Tick)
		assert.Contains(t, frames[0].Text, "|| 1 0 2 0 1 ||")
	})

	t.Run("Finds the opening", func(t *testing.T) {
		s := newService(t, Config{})

		run, err := s.Explore(context.Background(), dmn.ExploreRequest{Maze: opening})
		require.NoError(t, err)
		assert.True(t, run.Exited())
		assert.Equal(t, defaultRunName, run.Name)
		assert.Equal(t, maze.Coordinate{X: 2, Y: 3}, run.End)
	})

	t.Run("Applies the start override", func(t *testing.T) {
		s := newService(t, Config{})

		run, err := s.Explore(context.Background(), dmn.ExploreRequest{
			Maze:  opening,
			Start: &maze.Coordinate{X: 3, Y: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, maze.Coordinate{X: 3, Y: 1}, run.Start)
		assert.True(t, run.Exited())
	})

	t.Run("Rejects a wall start", func(t *testing.T) {
		s := newService(t, Config{})

		_, err := s.Explore(context.Background(), dmn.ExploreRequest{
			Maze:  opening,
			Start: &maze.Coordinate{X: 0, Y: 0},
		})
		assert.ErrorIs(t, err, maze.ErrInvalidOverride)
	})

	t.Run("Rejects a maze without agent", func(t *testing.T) {
		s := newService(t, Config{})

		_, err := s.Explore(context.Background(), dmn.ExploreRequest{Maze: "3 3\n1 1 1\n1 0 1\n1 1 1\n"})
		assert.ErrorIs(t, err, maze.ErrMissingAgent)
	})

	t.Run("Rejects an empty source", func(t *testing.T) {
		s := newService(t, Config{})

		_, err := s.Explore(context.Background(), dmn.ExploreRequest{})
		assert.ErrorIs(t, err, maze.ErrLoad)
	})

	t.Run("Tick limit is stored as truncated", func(t *testing.T) {
		repo := newMemoryRepo()
		s := newService(t, Config{Repo: repo, MaxTicks: 2})

		run, err := s.Explore(context.Background(), dmn.ExploreRequest{Maze: deadEnds})
		require.NoError(t, err)
		assert.True(t, run.Truncated)
		assert.Equal(t, explorer.Exploring.String(), run.Outcome)
		assert.Contains(t, repo.runs, run.ID)
	})

	t.Run("Queue failures do not stop the run", func(t *testing.T) {
		queue := newMemoryQueue()
		queue.pushErr = errors.New("redis down")
		s := newService(t, Config{Frames: queue})

		run, err := s.Explore(context.Background(), dmn.ExploreRequest{Maze: opening})
		require.NoError(t, err)
		assert.True(t, run.Exited())
	})

	t.Run("Repo failures are returned", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.err = errors.New("mongo down")
		s := newService(t, Config{Repo: repo})

		_, err := s.Explore(context.Background(), dmn.ExploreRequest{Maze: opening})
		assert.ErrorContains(t, err, "mongo down")
	})

	t.Run("Cancelled context fails the run", func(t *testing.T) {
		s := newService(t, Config{})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := s.Explore(ctx, dmn.ExploreRequest{Maze: deadEnds})
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Extra sinks see every frame", func(t *testing.T) {
		var ticks []int
		sink := explorer.SinkFunc(func(s explorer.Snapshot) error {
			ticks = append(ticks, s.Tick)
			return nil
		})
		s := newService(t, Config{Sinks: []explorer.Sink{sink}})

		_, err := s.Explore(context.Background(), dmn.ExploreRequest{Maze: opening})
		require.NoError(t, err)
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, ticks)
	})
}

func TestRunAndFrames(t *testing.T) {
	t.Run("Unknown run without repo", func(t *testing.T) {
		s := newService(t, Config{})
		_, err := s.Run(uuid.New())
		assert.ErrorIs(t, err, dmn.ErrRunNotFound)
	})

	t.Run("Frames are drained in order", func(t *testing.T) {
		queue := newMemoryQueue()
		s := newService(t, Config{Frames: queue})
		run, err := s.Explore(context.Background(), dmn.ExploreRequest{Maze: deadEnds})
		require.NoError(t, err)

		first, err := s.Frames(context.Background(), run.ID, 3)
		require.NoError(t, err)
		require.Len(t, first, 3)
		assert.Equal(t, 2, first[2].Tick)

		rest, err := s.Frames(context.Background(), run.ID, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(defaultFrameAmount), queue.lastAmount)
		require.Len(t, rest, 5)
		assert.Equal(t, 3, rest[0].Tick)
	})

	t.Run("Frame amount is capped", func(t *testing.T) {
		queue := newMemoryQueue()
		s := newService(t, Config{Frames: queue})

		_, err := s.Frames(context.Background(), uuid.New(), 10_000)
		require.NoError(t, err)
		assert.Equal(t, int64(maxFrameAmount), queue.lastAmount)
	})

	t.Run("No queue means no frames", func(t *testing.T) {
		s := newService(t, Config{})
		frames, err := s.Frames(context.Background(), uuid.New(), 5)
		require.NoError(t, err)
		assert.Empty(t, frames)
	})
}
