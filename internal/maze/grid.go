package maze

// Grid is the read-only view of a finished maze handed to renderers and exporters.
// Storage positions follow CellToGrid: odd/odd indices are cells, the rest are walls.
type Grid interface {
	Rows() int
	Cols() int
	StorageRows() int
	StorageCols() int
	At(row, col int) Cell
}

// Maze is a cylindrical maze stored at double resolution.
type Maze struct {
	topo Topology
	grid [][]Cell
}

// New creates a maze of rows×cols logical cells with every position set to Wall.
// Both dimensions must be at least 1; callers validate this.
func New(rows, cols int) *Maze {
	grid := make([][]Cell, 2*rows+1)
	for r := range grid {
		grid[r] = make([]Cell, 2*cols+1)
	}

	return &Maze{
		topo: Topology{Rows: rows, Cols: cols},
		grid: grid,
	}
}

// CellToGrid maps a logical cell to its storage coordinate.
func CellToGrid(p Position) (int, int) {
	return 2*p.Row + 1, 2*p.Col + 1
}

// Rows returns the number of logical rows.
func (m *Maze) Rows() int { return m.topo.Rows }

// Cols returns the number of logical columns.
func (m *Maze) Cols() int { return m.topo.Cols }

// StorageRows returns the height of the storage grid (2R+1).
func (m *Maze) StorageRows() int { return len(m.grid) }

// StorageCols returns the width of the storage grid (2C+1).
func (m *Maze) StorageCols() int { return len(m.grid[0]) }

// Topology returns the adjacency model of the maze.
func (m *Maze) Topology() Topology { return m.topo }

// At returns the marker at a storage coordinate. Out-of-range lookups read as Wall.
func (m *Maze) At(row, col int) Cell {
	if row < 0 || row >= len(m.grid) || col < 0 || col >= len(m.grid[row]) {
		return Wall
	}
	return m.grid[row][col]
}

// CellAt returns the marker of a logical cell.
func (m *Maze) CellAt(p Position) Cell {
	return m.At(CellToGrid(p))
}

// CarvePassage opens both cells and the wall between them.
// a and b must be adjacent under the maze topology. A step across the seam
// opens both boundary walls of the row, since storage column 0 and column 2C
// stand for the same wall.
func (m *Maze) CarvePassage(a, b Position) {
	ar, ac := CellToGrid(a)
	br, bc := CellToGrid(b)

	m.grid[ar][ac] = Path
	m.grid[br][bc] = Path

	if m.topo.wraps(a, b) {
		m.grid[ar][0] = Path
		m.grid[ar][len(m.grid[ar])-1] = Path
		return
	}
	m.grid[(ar+br)/2][(ac+bc)/2] = Path
}

// CarvedEdges counts opened walls between cells. The seam pair on a row counts once.
func (m *Maze) CarvedEdges() int {
	edges := 0
	last := m.StorageCols() - 1
	for r, row := range m.grid {
		for c, cell := range row {
			if cell != Path || (r%2 == 1 && c%2 == 1) || c == last {
				continue
			}
			edges++
		}
	}
	return edges
}
