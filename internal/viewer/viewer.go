// Package viewer runs the read-only terminal maze viewer.
package viewer

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/mbrooker/maze-maker/internal/maze"
	"github.com/mbrooker/maze-maker/internal/telemetry"
	"github.com/mbrooker/maze-maker/internal/ui"
)

// Screen is the terminal the viewer draws to and reads events from.
type Screen interface {
	ui.Canvas
	PollEvent() tcell.Event
	Sync()
	Close()
}

// Viewer holds the viewer state for one maze.
type Viewer struct {
	screen   Screen
	renderer *ui.Renderer
	maze     *maze.Maze
	ends     maze.Endpoints
	route    []maze.Point
	view     ui.View
	running  bool
}

// New creates a viewer on a fresh terminal screen.
func New(m *maze.Maze, ends maze.Endpoints) (*Viewer, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, m, ends), nil
}

// NewWithScreen creates a viewer drawing to screen.
func NewWithScreen(screen Screen, m *maze.Maze, ends maze.Endpoints) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		maze:     m,
		ends:     ends,
		route:    m.Solve(ends.Start, ends.End),
		running:  true,
	}
}

// Run executes the event loop until the user quits. The screen stays open;
// callers release it with Close.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	_, span := tracer.Start(ctx, "viewer.run")
	defer span.End()

	keys := 0
	for v.running {
		v.renderer.Render(v.maze, v.ends, v.route, v.view)

		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			v.press(ev.Key(), ev.Rune())
			keys++
		case *tcell.EventResize:
			v.screen.Sync()
		case nil:
			// Screen finalized underneath us.
			v.running = false
		}
	}

	span.SetAttributes(
		attribute.Int("viewer.keys", keys),
		attribute.Int("viewer.final_turn", v.view.Rotate),
	)
	return nil
}

// press applies a single key to the view.
func (v *Viewer) press(key tcell.Key, r rune) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyLeft:
		v.turn(-1)
	case tcell.KeyRight:
		v.turn(1)
	case tcell.KeyUp:
		v.scroll(-1)
	case tcell.KeyDown:
		v.scroll(1)
	case tcell.KeyRune:
		switch r {
		case 'q', 'Q':
			v.running = false
		case 's', 'S':
			v.view.ShowRoute = !v.view.ShowRoute
		case 'h':
			v.turn(-1)
		case 'l':
			v.turn(1)
		case 'k':
			v.scroll(-1)
		case 'j':
			v.scroll(1)
		}
	}
}

// turn rotates the cylinder by whole logical columns, wrapping around.
func (v *Viewer) turn(delta int) {
	cols := v.maze.Cols()
	v.view.Rotate = ((v.view.Rotate+delta)%cols + cols) % cols
}

// scroll moves the view by storage rows, keeping at least one row visible.
func (v *Viewer) scroll(delta int) {
	v.view.Scroll = max(0, min(v.view.Scroll+delta, v.maze.StorageRows()-1))
}

// Close finalizes the screen and restores the terminal.
func (v *Viewer) Close() {
	if v.screen != nil {
		v.screen.Close()
	}
}
