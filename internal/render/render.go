// Package render draws finished mazes as text.
package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mbrooker/maze-maker/internal/maze"
)

const (
	startGlyph = 'S'
	endGlyph   = 'E'
	routeGlyph = '•'
)

var (
	wallStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	startStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#98FB98"))
	endStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	routeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA"))
)

// Options controls text output.
type Options struct {
	Color bool         // Style glyphs with ANSI colours
	Route []maze.Point // Storage positions to mark as the solution route
}

// Header writes the banner printed above a maze.
func Header(w io.Writer, g maze.Grid, color bool) error {
	title := fmt.Sprintf("Wilson's Algorithm Maze on a Cylinder (%dx%d):", g.Rows(), g.Cols())
	if color {
		title = titleStyle.Render(title)
	}
	_, err := fmt.Fprintf(w, "%s\n(Left and right edges wrap around)\nStart (S) at top row, End (E) at bottom row\n\n", title)
	return err
}

// Text writes one line per storage row: S and E at the endpoints, █ for
// walls, • along the route and a space for open positions.
func Text(w io.Writer, g maze.Grid, ends maze.Endpoints, opts Options) error {
	sr, sc := maze.CellToGrid(ends.Start)
	er, ec := maze.CellToGrid(ends.End)

	route := make(map[maze.Point]bool, len(opts.Route))
	for _, p := range opts.Route {
		route[p] = true
	}

	bw := bufio.NewWriter(w)
	for r := 0; r < g.StorageRows(); r++ {
		for c := 0; c < g.StorageCols(); c++ {
			var glyph rune
			var style lipgloss.Style
			switch {
			case r == sr && c == sc:
				glyph, style = startGlyph, startStyle
			case r == er && c == ec:
				glyph, style = endGlyph, endStyle
			case g.At(r, c) == maze.Wall:
				glyph, style = g.At(r, c).Rune(), wallStyle
			case route[maze.Point{Row: r, Col: c}]:
				glyph, style = routeGlyph, routeStyle
			default:
				glyph = g.At(r, c).Rune()
			}

			if opts.Color && glyph != ' ' {
				bw.WriteString(style.Render(string(glyph)))
			} else {
				bw.WriteRune(glyph)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
