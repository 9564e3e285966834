package storage

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "matches.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close() //nolint:errcheck
	})
	return store
}

func TestSaveAndReadMatch(t *testing.T) {
	store := openTestStore(t)

	moves := []MoveRecord{
		{Piece: "Red", Coord: "D:3", Flips: 1},
		{Piece: "Blue", Coord: "C:3", Flips: 1},
		{Piece: "Red", Pass: true},
	}
	id, err := store.SaveMatch(MatchRecord{
		Variant:   "classic",
		BoardSize: 8,
		BlueScore: 30,
		RedScore:  34,
		Winner:    "Red",
	}, moves)
	if err != nil {
		t.Fatalf("SaveMatch: %v", err)
	}
	if id == 0 {
		t.Fatal("SaveMatch returned zero id")
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatalf("RecentMatches: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("RecentMatches returned %d records, want 1", len(recent))
	}
	rec := recent[0]
	if rec.Variant != "classic" || rec.BoardSize != 8 {
		t.Errorf("record = %+v", rec)
	}
	if rec.Winner != "Red" || rec.BlueScore != 30 || rec.RedScore != 34 {
		t.Errorf("result fields = %+v", rec)
	}
	if rec.MoveCount != 3 {
		t.Errorf("move count = %d, want 3", rec.MoveCount)
	}
	if rec.CreatedAt.IsZero() {
		t.Error("created_at not populated")
	}

	got, err := store.MatchMoves(id)
	if err != nil {
		t.Fatalf("MatchMoves: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("MatchMoves returned %d moves, want 3", len(got))
	}
	if got[0].Ply != 1 || got[0].Coord != "D:3" || got[0].Flips != 1 {
		t.Errorf("first move = %+v", got[0])
	}
	if !got[2].Pass || got[2].Coord != "" {
		t.Errorf("third move = %+v, want a pass", got[2])
	}
}

func TestRecentMatchesOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for _, variant := range []string{"mini", "classic", "grand"} {
		if _, err := store.SaveMatch(MatchRecord{Variant: variant, BoardSize: 8}, nil); err != nil {
			t.Fatalf("SaveMatch(%s): %v", variant, err)
		}
	}

	recent, err := store.RecentMatches(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 2 {
		t.Fatalf("limit not applied: got %d records", len(recent))
	}
	if recent[0].Variant != "grand" || recent[1].Variant != "classic" {
		t.Errorf("order = %s, %s, want newest first", recent[0].Variant, recent[1].Variant)
	}
}

func TestMatchMovesUnknownID(t *testing.T) {
	store := openTestStore(t)

	moves, err := store.MatchMoves(12345)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 0 {
		t.Errorf("unknown match returned %d moves", len(moves))
	}
}
