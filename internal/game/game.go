// Package game sequences turns on top of the board engine: it alternates
// the active color, records move history, and owns the one bit of
// randomness in the program (which color opens the match). The board core
// below it stays deterministic.
package game

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-reversi/internal/board"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

func init() {
	registry.Register(registry.Variant{ID: "mini", Title: "Mini 6x6", BoardSize: 6})
	registry.Register(registry.Variant{ID: "classic", Title: "Classic 8x8", BoardSize: 8})
	registry.Register(registry.Variant{ID: "grand", Title: "Grand 16x16", BoardSize: 16})
}

// ErrMustCapture reports a placement that flips nothing while the match
// runs with strict captures enabled.
var ErrMustCapture = errors.New("game: move must capture at least one piece")

// Move is one entry of the match history: who played where, and what got
// flipped. A move with Pass set records a passed turn; its Coords is the
// zero value and carries no meaning.
type Move struct {
	Piece   board.Piece
	Coords  board.Coords
	Flipped []board.Coords
	Pass    bool
}

// MoveResult reports the outcome of a successful placement.
type MoveResult struct {
	Flipped []board.Coords
	Next    board.Piece
}

// Match owns one game in progress: the grid, the active color, and the
// move log. Not safe for concurrent use.
type Match struct {
	grid   *board.Grid
	turn   board.Piece
	moves  []Move
	strict bool
}

// Option configures a new match.
type Option func(*Match)

// WithFirstPiece fixes the opening color instead of drawing it randomly.
func WithFirstPiece(p board.Piece) Option {
	return func(m *Match) { m.turn = p }
}

// WithSeed draws the opening color from a deterministic source, for
// reproducible matches and tests.
func WithSeed(seed int64) Option {
	return func(m *Match) {
		if rand.New(rand.NewSource(seed)).Intn(2) == 0 {
			m.turn = board.Blue
		} else {
			m.turn = board.Red
		}
	}
}

// WithStrictCaptures rejects placements that flip nothing, the classical
// legality rule. The default is permissive: any empty cell is playable.
func WithStrictCaptures() Option {
	return func(m *Match) { m.strict = true }
}

// New starts a match on a fresh board of the given size. Without a
// WithFirstPiece or WithSeed option the opening color is drawn from the
// global RNG.
func New(size int, opts ...Option) (*Match, error) {
	grid, err := board.New(size)
	if err != nil {
		return nil, err
	}

	m := &Match{grid: grid}
	if rand.Intn(2) == 1 {
		m.turn = board.Red
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Apply plays the active color at the given algebraic coordinate, resolves
// captures, records the move, and hands the turn to the other color.
func (m *Match) Apply(coordText string) (MoveResult, error) {
	coords, err := board.ParseCoords(coordText)
	if err != nil {
		return MoveResult{}, err
	}
	return m.ApplyCoords(coords)
}

// ApplyCoords is Apply for an already-parsed coordinate.
func (m *Match) ApplyCoords(coords board.Coords) (MoveResult, error) {
	pos, err := m.grid.Get(coords)
	if err != nil {
		return MoveResult{}, err
	}

	if m.strict && !m.wouldCapture(pos) {
		return MoveResult{}, fmt.Errorf("%w: %s", ErrMustCapture, coords)
	}

	flipped, err := pos.Place(m.turn)
	if err != nil {
		return MoveResult{}, err
	}

	m.moves = append(m.moves, Move{Piece: m.turn, Coords: coords, Flipped: flipped})
	m.turn = m.turn.Opposite()
	return MoveResult{Flipped: flipped, Next: m.turn}, nil
}

// wouldCapture probes a placement against a copy of the board. Probing on
// a copy keeps Apply free of partially applied moves when the strict rule
// rejects it.
func (m *Match) wouldCapture(pos board.Position) bool {
	if pos.Occupied() {
		// Let Place report the occupancy error itself.
		return true
	}
	probe, err := m.grid.Clone().Get(pos.Coords())
	if err != nil {
		return false
	}
	flipped, err := probe.Place(m.turn)
	return err == nil && len(flipped) > 0
}

// Pass records a passed turn and hands the turn to the other color.
func (m *Match) Pass() board.Piece {
	m.moves = append(m.moves, Move{Piece: m.turn, Pass: true})
	m.turn = m.turn.Opposite()
	return m.turn
}

// Turn returns the color to move.
func (m *Match) Turn() board.Piece {
	return m.turn
}

// Grid exposes the underlying board, primarily for rendering.
func (m *Match) Grid() *board.Grid {
	return m.grid
}

// History returns the recorded moves in play order.
func (m *Match) History() []Move {
	return m.moves
}

// Score returns the current piece counts.
func (m *Match) Score() (blue, red int) {
	return m.grid.Count()
}

// Over reports whether the match has ended: the board is full, or both
// players passed back to back.
func (m *Match) Over() bool {
	if m.grid.Full() {
		return true
	}
	n := len(m.moves)
	return n >= 2 && m.moves[n-1].Pass && m.moves[n-2].Pass
}

// Winner returns the leading color, or false on a draw.
func (m *Match) Winner() (board.Piece, bool) {
	blue, red := m.Score()
	switch {
	case blue > red:
		return board.Blue, true
	case red > blue:
		return board.Red, true
	default:
		return 0, false
	}
}
