package board

import "fmt"

// Piece is one of the two playing colors.
type Piece uint8

const (
	Blue Piece = iota
	Red
)

// Opposite returns the other color.
func (p Piece) Opposite() Piece {
	if p == Blue {
		return Red
	}
	return Blue
}

// String returns the color name.
func (p Piece) String() string {
	if p == Blue {
		return "Blue"
	}
	return "Red"
}

// Rune returns the serialization character for the piece: 'B' or 'R'.
func (p Piece) Rune() rune {
	if p == Blue {
		return 'B'
	}
	return 'R'
}

// Cell is the state of one grid slot: empty, or occupied by a color.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlue
	CellRed
)

// CellOf returns the occupied cell state for a piece.
func CellOf(p Piece) Cell {
	if p == Blue {
		return CellBlue
	}
	return CellRed
}

// Piece returns the occupying color and true, or false for an empty cell.
func (c Cell) Piece() (Piece, bool) {
	switch c {
	case CellBlue:
		return Blue, true
	case CellRed:
		return Red, true
	default:
		return 0, false
	}
}

// Rune returns the serialization character: ' ' for empty, 'B' or 'R'
// otherwise.
func (c Cell) Rune() rune {
	switch c {
	case CellBlue:
		return 'B'
	case CellRed:
		return 'R'
	default:
		return ' '
	}
}

// ParseCell decodes a serialized cell character. Characters outside the
// {' ', 'B', 'R'} alphabet come from external data and are reported as a
// parse error, not treated as fatal.
func ParseCell(r rune) (Cell, error) {
	switch r {
	case ' ':
		return CellEmpty, nil
	case 'B':
		return CellBlue, nil
	case 'R':
		return CellRed, nil
	default:
		return CellEmpty, fmt.Errorf("%w: cell %q", ErrParse, r)
	}
}
