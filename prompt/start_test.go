package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid(t *testing.T) *maze.Grid {
	t.Helper()
	g, _, err := maze.Parse(strings.NewReader("5 4\n1 1 1 1 1\n1 0 2 0 1\n1 1 0 1 1\n1 1 1 1 1\n"))
	require.NoError(t, err)
	return g
}

func TestStartPrompt(t *testing.T) {
	t.Run("Declined", func(t *testing.T) {
		var out bytes.Buffer
		_, ok, err := NewStartPrompt(strings.NewReader("n\n"), &out).Ask(grid(t))
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Contains(t, out.String(), "y/n")
	})

	t.Run("No input means no override", func(t *testing.T) {
		_, ok, err := NewStartPrompt(strings.NewReader(""), &bytes.Buffer{}).Ask(grid(t))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Accepted coordinate", func(t *testing.T) {
		c, ok, err := NewStartPrompt(strings.NewReader("Y\n3\n1\n"), &bytes.Buffer{}).Ask(grid(t))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, maze.Coordinate{X: 3, Y: 1}, c)
	})

	t.Run("Re-prompts on bad input and walls", func(t *testing.T) {
		var out bytes.Buffer
		input := "y\nabc\n9\n0\n0\n1\n1\n"
		c, ok, err := NewStartPrompt(strings.NewReader(input), &out).Ask(grid(t))
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, maze.Coordinate{X: 1, Y: 1}, c)

		text := out.String()
		assert.Contains(t, text, `"abc" is not a number!`)
		assert.Contains(t, text, "9 is outside of the maze's X boundaries! Only numbers between 0 and 4 are accepted.")
		assert.Contains(t, text, "Entered coordinates (x:0, y:0) leads to a wall!")
	})

	t.Run("Input ending mid entry", func(t *testing.T) {
		_, ok, err := NewStartPrompt(strings.NewReader("y\n2\n"), &bytes.Buffer{}).Ask(grid(t))
		assert.ErrorIs(t, err, ErrInputClosed)
		assert.False(t, ok)
	})
}
