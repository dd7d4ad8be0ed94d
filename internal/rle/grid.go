package rle

// Symbols of the encoded alphabet. The mapping of alive to 'b' and dead to
// 'o' is fixed by the format and must not be swapped.
const (
	SymbolAlive      = 'b'
	SymbolDead       = 'o'
	SymbolSeparator  = '$'
	SymbolTerminator = '!'
)

// Grid is a read-only view of a rectangular field of cells.
// Alive is only called with 0 <= x < Width() and 0 <= y < Height().
type Grid interface {
	Width() int
	Height() int
	Alive(x, y int) bool
}

// BoolGrid is a Grid backed by rows of booleans. Every row must have the
// same length.
type BoolGrid [][]bool

// Width returns the number of columns.
func (g BoolGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g BoolGrid) Height() int { return len(g) }

// Alive reports the state of cell (x, y).
func (g BoolGrid) Alive(x, y int) bool { return g[y][x] }

// ParseBoolGrid builds a BoolGrid from lines where 'b' marks an alive cell
// and any other byte a dead one. It is meant for fixtures and debugging.
func ParseBoolGrid(lines ...string) BoolGrid {
	g := make(BoolGrid, len(lines))
	for y, line := range lines {
		row := make([]bool, len(line))
		for x := 0; x < len(line); x++ {
			row[x] = line[x] == SymbolAlive
		}
		g[y] = row
	}
	return g
}

func symbolFor(alive bool) byte {
	if alive {
		return SymbolAlive
	}
	return SymbolDead
}
