package maze

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/mbrooker/maze-maker/internal/telemetry"
)

// walk is a loop-erased random walk. index maps a flattened cell to its
// position in path, or -1 when the cell is not on the walk.
type walk struct {
	path  []Position
	index []int
}

func newWalk(cells int) *walk {
	index := make([]int, cells)
	for i := range index {
		index[i] = -1
	}
	return &walk{index: index}
}

// reset starts a fresh walk at p, clearing whatever the last walk left behind.
func (w *walk) reset(t Topology, p Position) {
	for _, q := range w.path {
		w.index[t.index(q)] = -1
	}
	w.path = append(w.path[:0], p)
	w.index[t.index(p)] = 0
}

// step moves the walk to p. Returns true if a loop was erased.
func (w *walk) step(t Topology, p Position) bool {
	if at := w.index[t.index(p)]; at >= 0 {
		for _, q := range w.path[at+1:] {
			w.index[t.index(q)] = -1
		}
		w.path = w.path[:at+1]
		return true
	}
	w.index[t.index(p)] = len(w.path)
	w.path = append(w.path, p)
	return false
}

func (w *walk) last() Position {
	return w.path[len(w.path)-1]
}

// Generate carves a uniform spanning tree over all cells with Wilson's algorithm
// and returns freshly drawn start and end labels.
//
// rng is consumed in a fixed order: the seed column, then every walk step with
// cells enumerated row by row, then the start column, then the end column.
// Walk length is unbounded; termination is almost sure on a finite lattice.
func (m *Maze) Generate(ctx context.Context, rng *rand.Rand) Endpoints {
	tracer := telemetry.Tracer("maze")
	_, span := tracer.Start(ctx, "maze.generate")
	defer span.End()

	startTime := time.Now()
	t := m.topo

	visited := make([]bool, t.Rows*t.Cols)
	seed := Position{Row: 0, Col: rng.Intn(t.Cols)}
	visited[t.index(seed)] = true
	sr, sc := CellToGrid(seed)
	m.grid[sr][sc] = Path

	w := newWalk(t.Rows * t.Cols)
	steps, erased := 0, 0

	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Cols; col++ {
			cell := Position{Row: row, Col: col}
			if visited[t.index(cell)] {
				continue
			}

			w.reset(t, cell)
			for !visited[t.index(w.last())] {
				neighbors := t.Neighbors(w.last())
				if w.step(t, neighbors[rng.Intn(len(neighbors))]) {
					erased++
				}
				steps++
			}

			for i, p := range w.path {
				visited[t.index(p)] = true
				if i > 0 {
					m.CarvePassage(w.path[i-1], p)
				}
			}
		}
	}

	ends := Endpoints{
		Start: Position{Row: 0, Col: rng.Intn(t.Cols)},
		End:   Position{Row: t.Rows - 1, Col: rng.Intn(t.Cols)},
	}

	elapsed := time.Since(startTime)
	span.SetAttributes(
		attribute.Int("maze.rows", t.Rows),
		attribute.Int("maze.cols", t.Cols),
		attribute.Int("maze.walk_steps", steps),
		attribute.Int("maze.loops_erased", erased),
		attribute.Int64("maze.generation_ms", elapsed.Milliseconds()),
	)
	Logger().Debug("maze generated",
		zap.Int("rows", t.Rows),
		zap.Int("cols", t.Cols),
		zap.Any("seed", seed),
		zap.Int("walk_steps", steps),
		zap.Int("loops_erased", erased),
		zap.Duration("elapsed", elapsed),
	)

	return ends
}
