// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// History is write-only from the game's point of view: it is shown by the
// history command and never loaded back into a running game.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pong/internal/core"
	"github.com/vovakirdan/pong/internal/match"
)

// DefaultPath is where match history lives unless --db says otherwise.
const DefaultPath = "~/.pong/matches.db"

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// MatchResult is a stored match.
type MatchResult struct {
	ID           int64
	MatchID      string
	Score1       int
	Score2       int
	Winner       core.PlayerID
	Rallies      int
	LongestRally int
	WallBounces  int
	EndReason    string // "restart" or "quit"
	StartedAt    time.Time
	Duration     time.Duration
	CreatedAt    time.Time
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

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
			match_id TEXT NOT NULL UNIQUE,
			score1 INTEGER NOT NULL DEFAULT 0,
			score2 INTEGER NOT NULL DEFAULT 0,
			winner INTEGER NOT NULL DEFAULT 0,
			rallies INTEGER NOT NULL DEFAULT 0,
			longest_rally INTEGER NOT NULL DEFAULT 0,
			wall_bounces INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_started ON matches(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(result MatchResult) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, score1, score2, winner, rallies, longest_rally, wall_bounces, end_reason, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.MatchID,
		result.Score1,
		result.Score2,
		int(result.Winner),
		result.Rallies,
		result.LongestRally,
		result.WallBounces,
		result.EndReason,
		result.StartedAt.UnixMilli(),
		result.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveMatchRecord implements match.Saver.
func (s *Store) SaveMatchRecord(rec match.Record) error {
	_, err := s.SaveMatch(MatchResult{
		MatchID:      rec.MatchID,
		Score1:       rec.Score1,
		Score2:       rec.Score2,
		Winner:       rec.Winner(),
		Rallies:      rec.Rallies,
		LongestRally: rec.LongestRally,
		WallBounces:  rec.WallBounces,
		EndReason:    string(rec.EndReason),
		StartedAt:    rec.StartedAt,
		Duration:     rec.Duration,
	})
	return err
}

// Ensure Store implements match.Saver
var _ match.Saver = (*Store)(nil)

const matchColumns = `id, match_id, score1, score2, winner, rallies, longest_rally,
	wall_bounces, end_reason, started_at, duration_ms, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (MatchResult, error) {
	var (
		result     MatchResult
		winner     int
		startedAt  int64
		durationMS int64
		createdAt  any
	)

	err := row.Scan(
		&result.ID,
		&result.MatchID,
		&result.Score1,
		&result.Score2,
		&winner,
		&result.Rallies,
		&result.LongestRally,
		&result.WallBounces,
		&result.EndReason,
		&startedAt,
		&durationMS,
		&createdAt,
	)
	if err != nil {
		return MatchResult{}, err
	}

	result.Winner = core.PlayerID(winner)
	result.StartedAt = time.UnixMilli(startedAt)
	result.Duration = time.Duration(durationMS) * time.Millisecond
	result.CreatedAt = parseTime(createdAt)
	return result, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// MatchByID retrieves a match by its match ID.
// Returns nil without error if no such match exists.
func (s *Store) MatchByID(matchID string) (*MatchResult, error) {
	row := s.db.QueryRow(
		`SELECT `+matchColumns+` FROM matches WHERE match_id = ?`,
		matchID,
	)

	result, err := scanMatch(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}

	return &result, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+matchColumns+`
		 FROM matches
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		result, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		results = append(results, result)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ClearMatches deletes the whole match history.
func (s *Store) ClearMatches() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics over all stored matches.
type Stats struct {
	Matches      int
	Player1Wins  int
	Player2Wins  int
	Draws        int
	Goals        int
	LongestRally int
	TotalTime    time.Duration
	LastPlayed   time.Time
}

// GetStats retrieves aggregated statistics over all stored matches.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var totalMS, lastStarted int64

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(winner = 1), 0),
		        COALESCE(SUM(winner = 2), 0),
		        COALESCE(SUM(winner = 0), 0),
		        COALESCE(SUM(score1 + score2), 0),
		        COALESCE(MAX(longest_rally), 0),
		        COALESCE(SUM(duration_ms), 0),
		        COALESCE(MAX(started_at), 0)
		 FROM matches`,
	).Scan(
		&stats.Matches,
		&stats.Player1Wins,
		&stats.Player2Wins,
		&stats.Draws,
		&stats.Goals,
		&stats.LongestRally,
		&totalMS,
		&lastStarted,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	stats.TotalTime = time.Duration(totalMS) * time.Millisecond
	if lastStarted > 0 {
		stats.LastPlayed = time.UnixMilli(lastStarted)
	}

	return stats, nil
}
