// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord represents one finished match.
type MatchRecord struct {
	ID        int64
	Variant   string
	BoardSize int
	BlueScore int
	RedScore  int
	Winner    string // "Blue", "Red", or empty for a draw
	MoveCount int
	CreatedAt time.Time
}

// MoveRecord represents one move of a stored match, in play order.
type MoveRecord struct {
	Ply   int
	Piece string // "Blue" or "Red"
	Coord string // algebraic ("D:3"); empty for a pass
	Flips int
	Pass  bool
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			variant TEXT NOT NULL,
			board_size INTEGER NOT NULL,
			blue_score INTEGER NOT NULL,
			red_score INTEGER NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			move_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_variant ON matches(variant);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);

		CREATE TABLE IF NOT EXISTS moves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id INTEGER NOT NULL REFERENCES matches(id),
			ply INTEGER NOT NULL,
			piece TEXT NOT NULL,
			coord TEXT NOT NULL DEFAULT '',
			flips INTEGER NOT NULL DEFAULT 0,
			pass INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_moves_match ON moves(match_id, ply);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveMatch stores a finished match together with its move log and returns
// the new match ID.
func (s *Store) SaveMatch(rec MatchRecord, moves []MoveRecord) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after a successful commit

	res, err := tx.Exec(
		`INSERT INTO matches (variant, board_size, blue_score, red_score, winner, move_count)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Variant, rec.BoardSize, rec.BlueScore, rec.RedScore, rec.Winner, len(moves),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot insert match: %w", err)
	}
	matchID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read match id: %w", err)
	}

	for i, mv := range moves {
		pass := 0
		if mv.Pass {
			pass = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO moves (match_id, ply, piece, coord, flips, pass)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			matchID, i+1, mv.Piece, mv.Coord, mv.Flips, pass,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot insert move %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit match: %w", err)
	}
	return matchID, nil
}

// RecentMatches returns up to limit matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, variant, board_size, blue_score, red_score, winner, move_count, created_at
		 FROM matches ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var out []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		if err := rows.Scan(
			&rec.ID, &rec.Variant, &rec.BoardSize,
			&rec.BlueScore, &rec.RedScore, &rec.Winner,
			&rec.MoveCount, &rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan match: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// MatchMoves returns the move log of one match in play order.
func (s *Store) MatchMoves(matchID int64) ([]MoveRecord, error) {
	rows, err := s.db.Query(
		`SELECT ply, piece, coord, flips, pass
		 FROM moves WHERE match_id = ? ORDER BY ply`, matchID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query moves: %w", err)
	}
	defer rows.Close()

	var out []MoveRecord
	for rows.Next() {
		var mv MoveRecord
		var pass int
		if err := rows.Scan(&mv.Ply, &mv.Piece, &mv.Coord, &mv.Flips, &pass); err != nil {
			return nil, fmt.Errorf("storage: cannot scan move: %w", err)
		}
		mv.Pass = pass != 0
		out = append(out, mv)
	}
	return out, rows.Err()
}
