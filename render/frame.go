// Package render turns exploration snapshots into something a person can watch.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/maze-walker/explorer"
	"github.com/beka-birhanu/maze-walker/maze"
)

// Frame draws rows inside a border: a top rule of '=' and one "|| ... ||"
// line per row with the markers separated by spaces.
func Frame(rows [][]maze.Marker) string {
	if len(rows) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("===")
	b.WriteString(strings.Repeat("==", len(rows[0])))
	b.WriteString("==\n")

	for _, row := range rows {
		b.WriteString("|| ")
		for _, m := range row {
			b.WriteString(string(m))
			b.WriteByte(' ')
		}
		b.WriteString("||\n")
	}
	return b.String()
}

// WriterSink writes a text frame per snapshot to every configured writer.
type WriterSink struct {
	out io.Writer
}

// NewWriterSink creates a sink writing to all of ws.
func NewWriterSink(ws ...io.Writer) *WriterSink {
	return &WriterSink{out: io.MultiWriter(ws...)}
}

// Render implements explorer.Sink.
func (w *WriterSink) Render(s explorer.Snapshot) error {
	if _, err := io.WriteString(w.out, Frame(s.Rows)); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// OpenLogFile truncates or creates the frame log at path.
func OpenLogFile(path string) (*os.File, error) {
	return os.Create(path)
}
