package board

import "fmt"

// Position is a handle to exactly one cell of a specific grid: a coordinate
// plus a back-reference. It owns nothing; any number of positions may be
// bound to the same grid, and a write through one is visible through all.
// Positions are created by Grid.Get, which validates the coordinate.
type Position struct {
	grid   *Grid
	coords Coords
}

// Coords returns the coordinate this position is bound to.
func (p Position) Coords() Coords {
	return p.coords
}

// Piece returns the occupying color and true, or false when the cell is
// empty.
func (p Position) Piece() (Piece, bool) {
	return p.grid.read(p.coords).Piece()
}

// Occupied reports whether the cell holds a piece of either color.
func (p Position) Occupied() bool {
	_, ok := p.Piece()
	return ok
}

// Place puts a piece on this cell and resolves captures in all eight
// directions, returning the coordinates that were flipped. It fails with
// ErrPositionOccupied when the cell is not empty.
//
// Captureless placements succeed: this engine keeps the permissive rule
// where an empty cell is always playable, and leaves "must capture" to the
// turn sequencer as an opt-in variant.
func (p Position) Place(piece Piece) ([]Coords, error) {
	if p.Occupied() {
		return nil, fmt.Errorf("%w: %s", ErrPositionOccupied, p.coords)
	}

	// Collect every captured run before flipping anything, so all eight
	// scans observe the board exactly as it was before this placement.
	var flipped []Coords
	for _, dir := range Directions {
		flipped = append(flipped, p.capturedRun(piece, dir)...)
	}

	for _, c := range flipped {
		p.grid.write(c, CellOf(piece))
	}
	p.grid.write(p.coords, CellOf(piece))

	return flipped, nil
}

// capturedRun walks outward from the placement in one direction and returns
// the run of opposite-color cells that would be captured, or nil.
//
// The run is the maximal prefix of consecutive on-board cells holding the
// opposite color; it captures only when it is non-empty and the cell
// immediately beyond it is on-board and holds the placing color (the
// anchor). A run cut short by the board edge or an empty cell captures
// nothing.
func (p Position) capturedRun(piece Piece, dir Direction) []Coords {
	var run []Coords

	ray := p.grid.Ray(p.coords, dir)
	for {
		pos, ok := ray.Next()
		if !ok {
			return nil // ran off the board with no anchor
		}
		found, occupied := pos.Piece()
		if !occupied {
			return nil // empty cell, no anchor
		}
		if found == piece {
			if len(run) == 0 {
				return nil // adjacent own color, empty run
			}
			return run // anchored
		}
		run = append(run, pos.coords)
	}
}

// Flip replaces the piece on this cell with its opposite. Flipping an empty
// cell fails with ErrPositionNotOccupied.
func (p Position) Flip() error {
	piece, ok := p.Piece()
	if !ok {
		return fmt.Errorf("%w: %s", ErrPositionNotOccupied, p.coords)
	}
	p.grid.write(p.coords, CellOf(piece.Opposite()))
	return nil
}
