package maze

import (
	"errors"
	"fmt"
)

var (
	// ErrIncomplete is returned by Audit when a cell was never carved.
	ErrIncomplete = errors.New("cell not in spanning tree")
	// ErrCycle is returned by Audit when the carved walls close a loop.
	ErrCycle = errors.New("carved walls form a cycle")
	// ErrDisconnected is returned by Audit when some cell cannot be reached.
	ErrDisconnected = errors.New("cells not connected")
	// ErrSeam is returned by Audit when only one side of a seam wall is open.
	ErrSeam = errors.New("seam wall opened on one side only")
	// ErrStrayWall is returned by Audit for an opened position that separates no cells.
	ErrStrayWall = errors.New("opened wall outside the lattice")
)

// Point is a storage coordinate.
type Point struct {
	Row int
	Col int
}

// CanSolve reports whether end is reachable from start through open positions.
func (m *Maze) CanSolve(start, end Position) bool {
	_, ok := m.search(start, end)
	return ok
}

// Solve returns the storage route from start to end, both inclusive,
// or nil if end cannot be reached.
func (m *Maze) Solve(start, end Position) []Point {
	parent, ok := m.search(start, end)
	if !ok {
		return nil
	}

	cols := m.StorageCols()
	sr, sc := CellToGrid(start)
	er, ec := CellToGrid(end)
	from := sr*cols + sc

	route := []Point{{Row: er, Col: ec}}
	for at := er*cols + ec; at != from; {
		at = parent[at]
		route = append(route, Point{Row: at / cols, Col: at % cols})
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route
}

// search runs a breadth-first search between two cells.
func (m *Maze) search(start, end Position) ([]int, bool) {
	cols := m.StorageCols()
	sr, sc := CellToGrid(start)
	er, ec := CellToGrid(end)
	return m.flood(sr*cols+sc, er*cols+ec)
}

// flood runs a breadth-first search over flattened storage coordinates from
// from, stopping early when to is reached. Rows are bounded, columns wrap
// modulo the storage width. parent holds the predecessor of every reached
// position and -1 elsewhere.
func (m *Maze) flood(from, to int) ([]int, bool) {
	rows, cols := m.StorageRows(), m.StorageCols()

	parent := make([]int, rows*cols)
	for i := range parent {
		parent[i] = -1
	}
	parent[from] = from

	queue := []int{from}
	for len(queue) > 0 {
		at := queue[0]
		queue = queue[1:]
		if at == to {
			return parent, true
		}

		r, c := at/cols, at%cols
		next := make([]int, 0, 4)
		if r > 0 {
			next = append(next, at-cols)
		}
		if r < rows-1 {
			next = append(next, at+cols)
		}
		next = append(next, r*cols+(c-1+cols)%cols, r*cols+(c+1)%cols)

		for _, n := range next {
			if parent[n] >= 0 || m.grid[n/cols][n%cols] != Path {
				continue
			}
			parent[n] = at
			queue = append(queue, n)
		}
	}

	return parent, false
}

// Audit checks that the carved walls form a spanning tree over every cell:
// all cells carved, every open wall between two adjacent cells, all cells
// reachable from the first one and exactly R·C-1 edges.
// It is an independent check of Generate and never modifies the maze.
func (m *Maze) Audit() error {
	t := m.topo
	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Cols; col++ {
			if m.CellAt(Position{Row: row, Col: col}) != Path {
				return fmt.Errorf("cell (%d,%d): %w", row, col, ErrIncomplete)
			}
		}
	}

	for r, line := range m.grid {
		for c, cell := range line {
			if cell != Path || (r%2 == 1 && c%2 == 1) {
				continue
			}
			if _, _, err := m.wallCells(r, c); err != nil {
				return err
			}
		}
	}

	cols := m.StorageCols()
	sr, sc := CellToGrid(Position{})
	parent, _ := m.flood(sr*cols+sc, -1)
	for row := 0; row < t.Rows; row++ {
		for col := 0; col < t.Cols; col++ {
			r, c := CellToGrid(Position{Row: row, Col: col})
			if parent[r*cols+c] < 0 {
				return fmt.Errorf("cell (%d,%d): %w", row, col, ErrDisconnected)
			}
		}
	}

	// Connected with more than R·C-1 edges means a loop somewhere.
	if edges, want := m.CarvedEdges(), t.Rows*t.Cols-1; edges != want {
		return fmt.Errorf("tree has %d edges, want %d: %w", edges, want, ErrCycle)
	}
	return nil
}

// wallCells returns the two cells separated by the open wall at storage (r, c).
func (m *Maze) wallCells(r, c int) (Position, Position, error) {
	t := m.topo
	last := m.StorageCols() - 1

	switch {
	case r%2 == 1 && c%2 == 0:
		row := (r - 1) / 2
		if c == 0 || c == last {
			if m.grid[r][0] != m.grid[r][last] {
				return Position{}, Position{}, fmt.Errorf("row %d: %w", row, ErrSeam)
			}
			return Position{Row: row, Col: t.Cols - 1}, Position{Row: row, Col: 0}, nil
		}
		return Position{Row: row, Col: c/2 - 1}, Position{Row: row, Col: c / 2}, nil
	case r%2 == 0 && c%2 == 1 && r > 0 && r < m.StorageRows()-1:
		col := (c - 1) / 2
		return Position{Row: r/2 - 1, Col: col}, Position{Row: r / 2, Col: col}, nil
	default:
		return Position{}, Position{}, fmt.Errorf("position (%d,%d): %w", r, c, ErrStrayWall)
	}
}
