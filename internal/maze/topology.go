package maze

// Topology describes adjacency on a cylinder: rows are bounded,
// columns wrap modulo Cols.
type Topology struct {
	Rows int
	Cols int
}

// Neighbors returns the cells adjacent to p in the order up, down, left, right.
// Up and down are omitted at the top and bottom edges; left and right always
// exist and wrap around the seam.
func (t Topology) Neighbors(p Position) []Position {
	neighbors := make([]Position, 0, 4)

	if p.Row > 0 {
		neighbors = append(neighbors, Position{Row: p.Row - 1, Col: p.Col})
	}
	if p.Row < t.Rows-1 {
		neighbors = append(neighbors, Position{Row: p.Row + 1, Col: p.Col})
	}
	neighbors = append(neighbors,
		Position{Row: p.Row, Col: (p.Col - 1 + t.Cols) % t.Cols},
		Position{Row: p.Row, Col: (p.Col + 1) % t.Cols},
	)

	return neighbors
}

// Adjacent returns true if b is one of a's neighbors.
func (t Topology) Adjacent(a, b Position) bool {
	for _, n := range t.Neighbors(a) {
		if n == b {
			return true
		}
	}
	return false
}

// wraps reports whether a horizontal step between a and b crosses the seam:
// same row, one cell in column 0 and the other in column C-1. With two
// columns every horizontal step qualifies. A single column has no seam.
func (t Topology) wraps(a, b Position) bool {
	if a.Row != b.Row || t.Cols < 2 {
		return false
	}
	return (a.Col == 0 && b.Col == t.Cols-1) || (a.Col == t.Cols-1 && b.Col == 0)
}

// index flattens p into a row-major offset.
func (t Topology) index(p Position) int {
	return p.Row*t.Cols + p.Col
}
