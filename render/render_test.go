package render

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/beka-birhanu/maze-walker/explorer"
	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rows = [][]maze.Marker{
	{maze.Wall, maze.Corridor, maze.Wall},
	{maze.Wall, maze.Agent, maze.Visited},
}

func TestFrame(t *testing.T) {
	t.Run("Borders rows like the console view", func(t *testing.T) {
		want := "===========\n" +
			"|| 1 0 1 ||\n" +
			"|| 1 2 x ||\n"
		assert.Equal(t, want, Frame(rows))
	})

	t.Run("Empty snapshot renders nothing", func(t *testing.T) {
		assert.Empty(t, Frame(nil))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterSink(t *testing.T) {
	t.Run("Writes the frame to every writer", func(t *testing.T) {
		var console, log bytes.Buffer
		sink := NewWriterSink(&console, &log)

		require.NoError(t, sink.Render(explorer.Snapshot{Rows: rows}))
		assert.Equal(t, Frame(rows), console.String())
		assert.Equal(t, Frame(rows), log.String())
	})

	t.Run("Write failures are returned", func(t *testing.T) {
		sink := NewWriterSink(failingWriter{})
		assert.Error(t, sink.Render(explorer.Snapshot{Rows: rows}))
	})

	t.Run("Log file is truncated on open", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "Log.txt")
		require.NoError(t, os.WriteFile(path, []byte("previous run"), 0o600))

		f, err := OpenLogFile(path)
		require.NoError(t, err)
		require.NoError(t, NewWriterSink(f).Render(explorer.Snapshot{Rows: rows}))
		require.NoError(t, f.Close())

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, Frame(rows), string(content))
	})
}

func TestScreenSink(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 10)
	sink := NewScreenSinkWith(screen)
	defer sink.Close()

	err := sink.Render(explorer.Snapshot{
		Tick:     3,
		State:    explorer.Exploring,
		Position: maze.Coordinate{X: 1, Y: 1},
		Rows:     rows,
	})
	require.NoError(t, err)

	cell := func(x, y int) rune {
		r, _, _, _ := screen.GetContent(x, y)
		return r
	}

	assert.Equal(t, '=', cell(0, 0))
	assert.Equal(t, '=', cell(10, 0))
	assert.Equal(t, '|', cell(0, 1))
	assert.Equal(t, '1', cell(3, 1))
	assert.Equal(t, '0', cell(5, 1))
	assert.Equal(t, '2', cell(5, 2))
	assert.Equal(t, 'x', cell(7, 2))
	assert.Equal(t, '|', cell(9, 2))
	assert.Equal(t, 't', cell(0, 4))

	_, _, style, _ := screen.GetContent(5, 2)
	assert.Equal(t, markerStyles[maze.Agent], style)
}

func TestScreenSinkCloseTwice(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	sink := NewScreenSinkWith(screen)

	assert.NotPanics(t, func() {
		sink.Close()
		sink.Close()
	})
}
