package framequeue

import (
	"testing"

	dmn "github.com/beka-birhanu/maze-walker/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameEncoding(t *testing.T) {
	t.Run("Round trips tick and text", func(t *testing.T) {
		frame := dmn.Frame{Tick: 12, Text: "=====\n|| 2 ||\n"}
		got, err := decodeFrame(encodeFrame(frame))
		require.NoError(t, err)
		assert.Equal(t, frame, got)
	})

	t.Run("Same grid on different ticks gives different members", func(t *testing.T) {
		assert.NotEqual(t,
			encodeFrame(dmn.Frame{Tick: 6, Text: "|| 2 ||"}),
			encodeFrame(dmn.Frame{Tick: 7, Text: "|| 2 ||"}))
	})

	t.Run("Text may contain the separator", func(t *testing.T) {
		got, err := decodeFrame("3|a|b")
		require.NoError(t, err)
		assert.Equal(t, dmn.Frame{Tick: 3, Text: "a|b"}, got)
	})

	t.Run("Rejects malformed members", func(t *testing.T) {
		_, err := decodeFrame("no separator")
		assert.ErrorIs(t, err, ErrMalformedFrame)

		_, err = decodeFrame("x|text")
		assert.ErrorIs(t, err, ErrMalformedFrame)
	})
}

func TestFramesKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a8e-6a51-4c5e-9a43-1d2f1f8f0b11")
	assert.Equal(t, "maze-walker:frames:6f1c2a8e-6a51-4c5e-9a43-1d2f1f8f0b11", framesKey(defaultPrefix, id))
}

func TestNewRedisFrameQueue(t *testing.T) {
	_, err := NewRedisFrameQueue(nil, 60)
	assert.Error(t, err)
}
