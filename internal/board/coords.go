// Package board implements the Reversi rule engine: algebraic coordinates,
// eight-directional ray walking, the grid, and capture resolution.
// It contains no external dependencies to keep the game logic pure and
// testable; rendering, turn sequencing, and persistence live elsewhere.
package board

import (
	"fmt"
	"strings"
)

// Coords addresses one cell as a 0-indexed (row, column) pair. Both
// components are non-negative; validity against a particular grid is a
// separate check performed by Grid.Get.
type Coords struct {
	Row int
	Col int
}

// NewCoords creates a coordinate pair. Negative components are accepted
// here and rejected later by Grid.Get, so a caller doing its own arithmetic
// still gets ErrInvalidPosition instead of a surprise.
func NewCoords(row, col int) Coords {
	return Coords{Row: row, Col: col}
}

// String renders the coordinate in algebraic form: bijective base-26 row
// letters followed by a colon and the 1-based column number. (0,0) is "A:1".
// It is the exact inverse of ParseCoords.
func (c Coords) String() string {
	return fmt.Sprintf("%s:%d", formatRowLabel(c.Row), c.Col+1)
}

// ParseCoords parses algebraic coordinate text of the form "LETTERS:NUMBER".
// Row letters are case-insensitive, the column is 1-based decimal and must
// be at least 1. Anything else fails with ErrParse.
func ParseCoords(text string) (Coords, error) {
	letters, digits, ok := strings.Cut(text, ":")
	if !ok {
		return Coords{}, fmt.Errorf("%w: %q", ErrParse, text)
	}

	row, err := parseRowLabel(letters)
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %q", ErrParse, text)
	}

	col, err := parseColumn(digits)
	if err != nil {
		return Coords{}, fmt.Errorf("%w: %q", ErrParse, text)
	}

	return Coords{Row: row, Col: col}, nil
}

// maxCoordinate bounds parsed rows and columns. It is far beyond any
// playable board and keeps the accumulators in both parsers from wrapping,
// even where int is 32 bits.
const maxCoordinate = 1 << 20

// parseColumn decodes the 1-based decimal column part, returning the stored
// 0-based column.
func parseColumn(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty column")
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("invalid column digit %q", r)
		}
		n = n*10 + int(r-'0')
		if n > maxCoordinate {
			return 0, fmt.Errorf("column out of range")
		}
	}
	if n < 1 {
		return 0, fmt.Errorf("column must be at least 1")
	}
	return n - 1, nil
}

// formatRowLabel encodes a 0-based row as bijective base-26 letters, the
// spreadsheet-column scheme: 0 is "A", 25 is "Z", 26 is "AA".
func formatRowLabel(row int) string {
	var letters []byte
	n := row + 1
	for n > 0 {
		letters = append(letters, byte('A'+(n-1)%26))
		n = (n - 1) / 26
	}
	for i, j := 0, len(letters)-1; i < j; i, j = i+1, j-1 {
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}

// parseRowLabel decodes bijective base-26 letters into a 0-based row.
// The digits are A=1..Z=26 with no zero digit, so "AA" is 26*1+1-1 = 26.
func parseRowLabel(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty row label")
	}
	n := 0
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			n = n*26 + int(r-'A'+1)
		case r >= 'a' && r <= 'z':
			n = n*26 + int(r-'a'+1)
		default:
			return 0, fmt.Errorf("invalid row letter %q", r)
		}
		if n > maxCoordinate {
			return 0, fmt.Errorf("row label out of range")
		}
	}
	return n - 1, nil
}
