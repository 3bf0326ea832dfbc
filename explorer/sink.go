package explorer

import (
	"errors"

	"github.com/beka-birhanu/maze-walker/maze"
)

// Snapshot is the state of an exploration after a tick.
type Snapshot struct {
	Tick     int             // Tick index, 0 for the initial snapshot.
	State    State           // Engine state after the tick.
	Position maze.Coordinate // Agent position after the tick.
	Rows     [][]maze.Marker // Copy of the grid contents.
}

// Sink receives snapshots for display or storage.
type Sink interface {
	Render(Snapshot) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Snapshot) error

// Render calls f(s).
func (f SinkFunc) Render(s Snapshot) error {
	return f(s)
}

type multiSink []Sink

// MultiSink fans a snapshot out to every sink in order. All sinks are called
// even if one fails; the errors are joined.
func MultiSink(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Render(s Snapshot) error {
	var errs []error
	for _, sink := range m {
		if sink == nil {
			continue
		}
		if err := sink.Render(s); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

type discard struct{}

func (discard) Render(Snapshot) error { return nil }
