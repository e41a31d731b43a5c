// Package maze provides cylindrical maze generation and verification.
package maze

// Cell marks a single storage position as wall or open passage.
type Cell uint8

const (
	// Wall is an uncarved position. Every position starts as Wall.
	Wall Cell = iota
	// Path is a carved position: either a tree cell or an opened wall.
	Path
)

// IsPassable returns true if the position can be walked through.
func (c Cell) IsPassable() bool {
	return c == Path
}

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	if c == Path {
		return ' '
	}
	return '█'
}

// String returns a human-readable marker name.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Path:
		return "path"
	default:
		return "unknown"
	}
}

// Position is a logical cell coordinate in the R×C lattice.
type Position struct {
	Row int
	Col int
}

// Endpoints holds the start and end labels chosen after generation.
type Endpoints struct {
	Start Position // Always in row 0
	End   Position // Always in the last row
}
