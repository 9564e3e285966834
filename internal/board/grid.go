package board

import (
	"fmt"
	"strings"
)

// Grid is the square board. It exclusively owns the cell storage; every
// mutation goes through a Position handle bound to it. Grids are not safe
// for concurrent use; one logical thread of control mutates a grid at a
// time, and callers needing more must serialize externally.
type Grid struct {
	size  int
	cells []Cell // flat row-major arena, indexed row*size+col
}

// New allocates a size×size grid and seeds the four starting pieces in the
// center (Blue on the main diagonal, Red on the anti-diagonal). The size
// must be even and greater than 4; anything else fails with
// ErrInvalidBoardSize.
func New(size int) (*Grid, error) {
	if size <= 4 || size%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBoardSize, size)
	}

	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}

	half := size / 2
	g.write(Coords{Row: half, Col: half}, CellBlue)
	g.write(Coords{Row: half - 1, Col: half - 1}, CellBlue)
	g.write(Coords{Row: half - 1, Col: half}, CellRed)
	g.write(Coords{Row: half, Col: half - 1}, CellRed)

	return g, nil
}

// Size returns the board side length.
func (g *Grid) Size() int {
	return g.size
}

// Get returns a Position bound to this grid at the given coordinates, or
// ErrInvalidPosition when either component is outside the board. This is
// the only bounds check; read and write trust their callers.
func (g *Grid) Get(c Coords) (Position, error) {
	if !g.contains(c) {
		return Position{}, fmt.Errorf("%w: %s", ErrInvalidPosition, c)
	}
	return Position{grid: g, coords: c}, nil
}

// contains reports whether c lies on the board.
func (g *Grid) contains(c Coords) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

// read returns the cell at c. Bounds were validated by Get.
func (g *Grid) read(c Coords) Cell {
	return g.cells[c.Row*g.size+c.Col]
}

// write stores a cell at c. Bounds were validated by Get.
func (g *Grid) write(c Coords, cell Cell) {
	g.cells[c.Row*g.size+c.Col] = cell
}

// Ray walks outward from origin in dir, returning the on-board positions in
// order. The underlying coordinate ray is unbounded; this composes it with
// the grid membership check so the sequence covers exactly the on-board
// part of the ray.
func (g *Grid) Ray(origin Coords, dir Direction) *GridRay {
	return &GridRay{grid: g, ray: NewRay(origin, dir)}
}

// GridRay is a forward-only cursor over the on-board cells of one ray.
type GridRay struct {
	grid *Grid
	ray  *Ray
}

// Next returns the next on-board position, or false once the ray has left
// the board on any axis.
func (r *GridRay) Next() (Position, bool) {
	c, ok := r.ray.Next()
	if !ok || !r.grid.contains(c) {
		return Position{}, false
	}
	return Position{grid: r.grid, coords: c}, true
}

// String renders the board with a column-number header and a row-letter
// gutter: one character per cell, ' ' for empty, 'B' for Blue, 'R' for Red.
// Purely presentational; the TUI draws its own styled variant.
func (g *Grid) String() string {
	var sb strings.Builder

	gutter := 0
	for row := 0; row < g.size; row++ {
		if w := len(formatRowLabel(row)); w > gutter {
			gutter = w
		}
	}

	sb.WriteString(strings.Repeat(" ", gutter))
	for col := 0; col < g.size; col++ {
		fmt.Fprintf(&sb, " %d ", col+1)
	}
	sb.WriteByte('\n')

	for row := 0; row < g.size; row++ {
		label := formatRowLabel(row)
		sb.WriteString(label)
		sb.WriteString(strings.Repeat(" ", gutter-len(label)))
		for col := 0; col < g.size; col++ {
			cell := g.read(Coords{Row: row, Col: col})
			width := len(fmt.Sprintf(" %d ", col+1))
			pad := (width - 1) / 2
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteRune(cell.Rune())
			sb.WriteString(strings.Repeat(" ", width-pad-1))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Clone returns an independent copy of the grid. Positions bound to the
// original do not observe writes to the clone.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{size: g.size, cells: cells}
}

// Count returns how many cells currently hold each color.
func (g *Grid) Count() (blue, red int) {
	for _, cell := range g.cells {
		switch cell {
		case CellBlue:
			blue++
		case CellRed:
			red++
		}
	}
	return blue, red
}

// Full reports whether every cell is occupied.
func (g *Grid) Full() bool {
	for _, cell := range g.cells {
		if cell == CellEmpty {
			return false
		}
	}
	return true
}
