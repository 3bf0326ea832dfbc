package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/beka-birhanu/maze-walker/explorer"
	"github.com/beka-birhanu/maze-walker/maze"
	"github.com/gdamore/tcell/v2"
)

var markerStyles = map[maze.Marker]tcell.Style{
	maze.Wall:     tcell.StyleDefault.Foreground(tcell.ColorGray),
	maze.Corridor: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	maze.Agent:    tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
	maze.Visited:  tcell.StyleDefault.Foreground(tcell.ColorYellow),
}

// ScreenSink draws each snapshot on a terminal screen, framed the same way as
// Frame, with a status line underneath.
type ScreenSink struct {
	screen tcell.Screen
	once   sync.Once
}

// NewScreenSink creates and initializes a terminal screen.
func NewScreenSink() (*ScreenSink, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	if err := screen.Init(); err != nil {
		return nil, err
	}

	return &ScreenSink{screen: screen}, nil
}

// NewScreenSinkWith wraps an already initialized screen.
func NewScreenSinkWith(screen tcell.Screen) *ScreenSink {
	return &ScreenSink{screen: screen}
}

// Render implements explorer.Sink.
func (s *ScreenSink) Render(snapshot explorer.Snapshot) error {
	s.screen.Clear()

	border := tcell.StyleDefault.Foreground(tcell.ColorBlue)
	width := 0
	if len(snapshot.Rows) > 0 {
		width = len(snapshot.Rows[0])
	}
	s.drawText(0, 0, strings.Repeat("=", 5+2*width), border)

	// Row lines look like "|| m m m ||"; markers sit at 3+2*i.
	for y, row := range snapshot.Rows {
		s.drawText(0, y+1, "||", border)
		for i, m := range row {
			style, ok := markerStyles[m]
			if !ok {
				style = tcell.StyleDefault
			}
			s.drawText(3+2*i, y+1, string(m), style)
		}
		s.drawText(3+2*len(row), y+1, "||", border)
	}

	status := fmt.Sprintf("tick %d  %s  at %s", snapshot.Tick, snapshot.State, snapshot.Position)
	s.drawText(0, len(snapshot.Rows)+2, status, tcell.StyleDefault)
	s.screen.Show()
	return nil
}

// Close restores the terminal. Later calls do nothing.
func (s *ScreenSink) Close() {
	s.once.Do(s.screen.Fini)
}

func (s *ScreenSink) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}
