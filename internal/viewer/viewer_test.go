package viewer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbrooker/maze-maker/internal/maze"
)

type fakeScreen struct {
	events []tcell.Event
	closed bool
	synced int
	shown  int
}

func (f *fakeScreen) Clear()                                 {}
func (f *fakeScreen) Show()                                  { f.shown++ }
func (f *fakeScreen) SetContent(int, int, rune, tcell.Style) {}
func (f *fakeScreen) Size() (int, int)                       { return 80, 24 }
func (f *fakeScreen) Sync()                                  { f.synced++ }
func (f *fakeScreen) Close()                                 { f.closed = true }

func (f *fakeScreen) PollEvent() tcell.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func newViewer(t *testing.T, rows, cols int) (*Viewer, *fakeScreen) {
	t.Helper()
	m := maze.New(rows, cols)
	ends := m.Generate(context.Background(), rand.New(rand.NewSource(4)))
	screen := &fakeScreen{}
	return NewWithScreen(screen, m, ends), screen
}

func TestNewWithScreenSolvesRoute(t *testing.T) {
	v, _ := newViewer(t, 5, 6)
	require.NotEmpty(t, v.route)
	assert.True(t, v.running)
}

func TestTurnWraps(t *testing.T) {
	v, _ := newViewer(t, 3, 4)

	v.press(tcell.KeyLeft, 0)
	assert.Equal(t, 3, v.view.Rotate)

	for i := 0; i < 5; i++ {
		v.press(tcell.KeyRight, 0)
	}
	assert.Equal(t, 0, v.view.Rotate)

	v.press(tcell.KeyRune, 'l')
	assert.Equal(t, 1, v.view.Rotate)
}

func TestScrollClamps(t *testing.T) {
	v, _ := newViewer(t, 3, 4)

	v.press(tcell.KeyUp, 0)
	assert.Equal(t, 0, v.view.Scroll)

	for i := 0; i < 20; i++ {
		v.press(tcell.KeyDown, 0)
	}
	assert.Equal(t, v.maze.StorageRows()-1, v.view.Scroll)
}

func TestToggleRouteAndQuit(t *testing.T) {
	v, _ := newViewer(t, 3, 4)

	v.press(tcell.KeyRune, 's')
	assert.True(t, v.view.ShowRoute)
	v.press(tcell.KeyRune, 's')
	assert.False(t, v.view.ShowRoute)

	v.press(tcell.KeyRune, 'q')
	assert.False(t, v.running)
}

func TestEscapeQuits(t *testing.T) {
	v, _ := newViewer(t, 2, 2)
	v.press(tcell.KeyEscape, 0)
	assert.False(t, v.running)
}

func TestRunStopsWhenScreenEnds(t *testing.T) {
	v, screen := newViewer(t, 3, 3)
	screen.events = []tcell.Event{tcell.NewEventResize(80, 24)}

	require.NoError(t, v.Run(context.Background()))
	assert.Equal(t, 1, screen.synced)
	assert.Equal(t, 2, screen.shown)
	assert.False(t, screen.closed, "Run leaves the screen to Close")

	v.Close()
	assert.True(t, screen.closed)
}
