package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/maze-walker/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Rejects a nil writer", func(t *testing.T) {
		_, err := New("APP", config.ColorGreen, nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("Rejects an empty prefix", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
	})

	t.Run("Tags lines with prefix and level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("EXPLORER", config.ColorCyan, &buf)
		require.NoError(t, err)

		l.Info("started")
		l.Warning("slow sink")
		l.Error("failed")

		out := buf.String()
		assert.Contains(t, out, "[EXPLORER]")
		assert.Contains(t, out, "[INFO]"+config.LogColorReset+" started")
		assert.Contains(t, out, "[WARNING]"+config.LogColorReset+" slow sink")
		assert.Contains(t, out, "[ERROR]"+config.LogColorReset+" failed")
	})
}
