package board

import "errors"

// Sentinel errors returned by the board package. Callers match them with
// errors.Is; every fallible operation returns one of these wrapped with
// context rather than panicking on bad input.
var (
	// ErrParse reports coordinate or cell text that does not match the
	// expected format.
	ErrParse = errors.New("board: parse error")

	// ErrInvalidBoardSize reports a requested grid size that is too small
	// or odd.
	ErrInvalidBoardSize = errors.New("board: invalid board size")

	// ErrInvalidPosition reports coordinates outside the grid.
	ErrInvalidPosition = errors.New("board: invalid position")

	// ErrPositionOccupied reports a placement on a non-empty cell.
	ErrPositionOccupied = errors.New("board: position already occupied")

	// ErrPositionNotOccupied reports a flip of an empty cell.
	ErrPositionNotOccupied = errors.New("board: position not occupied")
)
