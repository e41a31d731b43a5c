package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mbrooker/maze-maker/internal/maze"
)

// View is the camera over a maze: how far the cylinder is turned and how far
// down the rows are scrolled.
type View struct {
	Rotate    int  // Logical columns turned to the left
	Scroll    int  // Storage rows scrolled off the top
	ShowRoute bool // Overlay the start-to-end route
}

// Renderer handles drawing a maze to a canvas.
type Renderer struct {
	canvas Canvas
}

// NewRenderer creates a new renderer for the given canvas.
func NewRenderer(canvas Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Column maps a screen column to a storage column under rotation. Storage
// columns 0 and 2C hold the same seam wall, so the surface repeats every 2C.
func Column(g maze.Grid, rotate, x int) int {
	period := g.StorageCols() - 1
	if period == 0 {
		return 0
	}
	return ((x+2*rotate)%period + period) % period
}

// Render draws the maze, endpoints, optional route and a status line.
func (r *Renderer) Render(g maze.Grid, ends maze.Endpoints, route []maze.Point, v View) {
	r.canvas.Clear()
	width, height := r.canvas.Size()

	onRoute := make(map[maze.Point]bool, len(route))
	if v.ShowRoute {
		for _, p := range route {
			onRoute[p] = true
		}
	}
	sr, sc := maze.CellToGrid(ends.Start)
	er, ec := maze.CellToGrid(ends.End)

	rows := min(g.StorageRows()-v.Scroll, height-1)
	cols := min(g.StorageCols(), width)
	for y := 0; y < rows; y++ {
		row := y + v.Scroll
		for x := 0; x < cols; x++ {
			col := Column(g, v.Rotate, x)
			cell := g.At(row, col)

			ch, style := cell.Rune(), r.cellStyle(cell)
			switch {
			case row == sr && col == sc:
				ch, style = 'S', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
			case row == er && col == ec:
				ch, style = 'E', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
			case onRoute[maze.Point{Row: row, Col: col}]:
				ch, style = '•', tcell.StyleDefault.Foreground(tcell.ColorYellow)
			}
			r.canvas.SetContent(x, y, ch, style)
		}
	}

	status := fmt.Sprintf("%dx%d  turn %d/%d  ←/→ turn  ↑/↓ scroll  s route  q quit",
		g.Rows(), g.Cols(), ((v.Rotate%g.Cols())+g.Cols())%g.Cols(), g.Cols())
	r.RenderMessage(status, height-1)

	r.canvas.Show()
}

// cellStyle returns the appropriate style for a marker.
func (r *Renderer) cellStyle(cell maze.Cell) tcell.Style {
	switch cell {
	case maze.Wall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case maze.Path:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	default:
		return tcell.StyleDefault
	}
}

// RenderMessage displays a message on row y.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	x := 0
	for _, ch := range msg {
		r.canvas.SetContent(x, y, ch, style)
		x++
	}
}
