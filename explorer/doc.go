// Package explorer walks an agent through a maze.Grid until it reaches the
// boundary or runs out of history to retreat along.
//
// Each Tick either moves the agent onto a neighbouring corridor, picked in the
// fixed order Left, Right, Down, Up, or backtracks one cell along the recorded
// path. Every tick that changes the grid sends a Snapshot to the configured
// Sink.
//
//	engine, err := explorer.New(grid, start, explorer.WithSink(sink), explorer.WithDelay(500*time.Millisecond))
//	if err != nil {
//		return err
//	}
//	result, err := engine.Run(ctx)
//
// Reaching NoExit is a normal outcome, not an error.
package explorer
