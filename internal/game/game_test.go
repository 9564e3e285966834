package game

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-reversi/internal/board"
	"github.com/vovakirdan/tui-reversi/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"mini", "classic", "grand"} {
		if !registry.Exists(id) {
			t.Errorf("variant %q not registered", id)
		}
	}

	v, err := registry.Lookup("classic")
	if err != nil {
		t.Fatal(err)
	}
	if v.BoardSize != 8 {
		t.Errorf("classic board size = %d, want 8", v.BoardSize)
	}
}

func TestApplyAlternatesTurn(t *testing.T) {
	m, err := New(8, WithFirstPiece(board.Red))
	if err != nil {
		t.Fatal(err)
	}

	if m.Turn() != board.Red {
		t.Fatalf("opening turn = %v, want Red", m.Turn())
	}

	res, err := m.Apply("D:3")
	if err != nil {
		t.Fatal(err)
	}
	if res.Next != board.Blue {
		t.Errorf("next = %v, want Blue", res.Next)
	}
	if m.Turn() != board.Blue {
		t.Errorf("turn after move = %v, want Blue", m.Turn())
	}
	if len(res.Flipped) != 1 || res.Flipped[0].String() != "D:4" {
		t.Errorf("flipped = %v, want [D:4]", res.Flipped)
	}
}

func TestApplyErrorsLeaveTurnAlone(t *testing.T) {
	m, err := New(8, WithFirstPiece(board.Red))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		text     string
		expected error
	}{
		{"parse failure", "D3", board.ErrParse},
		{"off board", "Z:40", board.ErrInvalidPosition},
		{"occupied", "D:4", board.ErrPositionOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.Apply(tt.text); !errors.Is(err, tt.expected) {
				t.Errorf("Apply(%q) error = %v, want %v", tt.text, err, tt.expected)
			}
			if m.Turn() != board.Red {
				t.Errorf("turn changed on rejected move")
			}
			if len(m.History()) != 0 {
				t.Errorf("rejected move was recorded")
			}
		})
	}
}

func TestStrictCaptures(t *testing.T) {
	m, err := New(8, WithFirstPiece(board.Red), WithStrictCaptures())
	if err != nil {
		t.Fatal(err)
	}

	// A:1 touches nothing, so the strict rule rejects it.
	if _, err := m.Apply("A:1"); !errors.Is(err, ErrMustCapture) {
		t.Fatalf("Apply(A:1) error = %v, want ErrMustCapture", err)
	}
	if pos, _ := m.Grid().Get(board.NewCoords(0, 0)); pos.Occupied() {
		t.Error("rejected strict move must not touch the board")
	}

	// D:3 captures the seeded Blue and is accepted.
	if _, err := m.Apply("D:3"); err != nil {
		t.Errorf("Apply(D:3) error = %v", err)
	}
}

func TestPermissiveCaptureless(t *testing.T) {
	m, err := New(8, WithFirstPiece(board.Red))
	if err != nil {
		t.Fatal(err)
	}

	res, err := m.Apply("A:1")
	if err != nil {
		t.Fatalf("captureless move rejected: %v", err)
	}
	if len(res.Flipped) != 0 {
		t.Errorf("flipped = %v, want none", res.Flipped)
	}
}

func TestPassAndOver(t *testing.T) {
	m, err := New(6, WithFirstPiece(board.Blue))
	if err != nil {
		t.Fatal(err)
	}

	if next := m.Pass(); next != board.Red {
		t.Errorf("after Blue pass next = %v, want Red", next)
	}
	if m.Over() {
		t.Error("one pass should not end the match")
	}
	m.Pass()
	if !m.Over() {
		t.Error("two consecutive passes should end the match")
	}

	h := m.History()
	if len(h) != 2 || !h[0].Pass || !h[1].Pass {
		t.Errorf("history = %+v, want two passes", h)
	}
}

func TestSeededFirstPieceIsStable(t *testing.T) {
	sawBlue, sawRed := false, false
	for seed := int64(1); seed <= 16; seed++ {
		// The opening color contract is one draw from a source with this
		// seed, so the test can pin the exact expected piece per seed.
		want := board.Blue
		if rand.New(rand.NewSource(seed)).Intn(2) == 1 {
			want = board.Red
		}
		if want == board.Blue {
			sawBlue = true
		} else {
			sawRed = true
		}

		for i := 0; i < 4; i++ {
			m, err := New(8, WithSeed(seed))
			if err != nil {
				t.Fatal(err)
			}
			if got := m.Turn(); got != want {
				t.Errorf("seed %d: first piece = %v, want %v", seed, got, want)
			}
		}
	}
	if !sawBlue || !sawRed {
		t.Error("seed set never varied the opening color")
	}
}

func TestScoreAndWinner(t *testing.T) {
	m, err := New(8, WithFirstPiece(board.Red))
	if err != nil {
		t.Fatal(err)
	}

	if blue, red := m.Score(); blue != 2 || red != 2 {
		t.Fatalf("opening score = %d-%d, want 2-2", blue, red)
	}
	if _, ok := m.Winner(); ok {
		t.Error("opening position is a draw")
	}

	if _, err := m.Apply("D:3"); err != nil {
		t.Fatal(err)
	}
	blue, red := m.Score()
	if blue != 1 || red != 4 {
		t.Errorf("score after D:3 = %d-%d, want 1-4", blue, red)
	}
	if w, ok := m.Winner(); !ok || w != board.Red {
		t.Errorf("leader = %v, %v, want Red", w, ok)
	}
}
