package ui

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbrooker/maze-maker/internal/maze"
)

type fakeCanvas struct {
	width, height int
	cells         map[[2]int]rune
	shown         int
}

func newFakeCanvas(width, height int) *fakeCanvas {
	return &fakeCanvas{width: width, height: height, cells: map[[2]int]rune{}}
}

func (f *fakeCanvas) Clear()           { f.cells = map[[2]int]rune{} }
func (f *fakeCanvas) Show()            { f.shown++ }
func (f *fakeCanvas) Size() (int, int) { return f.width, f.height }

func (f *fakeCanvas) SetContent(x, y int, r rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = r
}

func (f *fakeCanvas) row(y, width int) string {
	out := make([]rune, width)
	for x := range out {
		out[x] = f.cells[[2]int{x, y}]
	}
	return string(out)
}

func TestColumn(t *testing.T) {
	g := maze.New(2, 3) // 7 storage columns, period 6

	assert.Equal(t, 0, Column(g, 0, 0))
	assert.Equal(t, 0, Column(g, 0, 6))
	assert.Equal(t, 2, Column(g, 1, 0))
	assert.Equal(t, 0, Column(g, 3, 0))
	assert.Equal(t, 4, Column(g, -1, 0))
}

func TestRenderRotation(t *testing.T) {
	m := maze.New(1, 3)
	m.CarvePassage(maze.Position{Row: 0, Col: 2}, maze.Position{Row: 0, Col: 0})
	ends := maze.Endpoints{Start: maze.Position{Row: 0, Col: 0}, End: maze.Position{Row: 0, Col: 2}}

	canvas := newFakeCanvas(40, 10)
	r := NewRenderer(canvas)

	r.Render(m, ends, nil, View{})
	assert.Equal(t, " S███E ", canvas.row(1, 7))

	// Turning by one column brings the seam into the middle of the view.
	r.Render(m, ends, nil, View{Rotate: 1})
	assert.Equal(t, "███E S█", canvas.row(1, 7))
	assert.Equal(t, 2, canvas.shown)
}

func TestRenderRouteAndStatus(t *testing.T) {
	m := maze.New(3, 4)
	ends := m.Generate(context.Background(), rand.New(rand.NewSource(8)))
	route := m.Solve(ends.Start, ends.End)
	require.NotNil(t, route)

	canvas := newFakeCanvas(40, 20)
	r := NewRenderer(canvas)

	r.Render(m, ends, route, View{})
	for _, ch := range canvas.cells {
		assert.NotEqual(t, '•', ch)
	}

	r.Render(m, ends, route, View{ShowRoute: true})
	dots := 0
	for _, ch := range canvas.cells {
		if ch == '•' {
			dots++
		}
	}
	assert.Equal(t, len(route)-2, dots)
	assert.Contains(t, canvas.row(19, 40), "3x4")
}

func TestRenderClipsToCanvas(t *testing.T) {
	m := maze.New(10, 10)
	m.Generate(context.Background(), rand.New(rand.NewSource(1)))

	canvas := newFakeCanvas(5, 4)
	NewRenderer(canvas).Render(m, maze.Endpoints{}, nil, View{Scroll: 2})

	for pos := range canvas.cells {
		if pos[1] < 3 {
			assert.Less(t, pos[0], 5)
		}
		assert.Less(t, pos[1], 4)
	}
}
