// internal/bench/store.go
//
// SQLite persistence for benchmark runs.
// Responsibilities:
//   - Save run summaries into the bench_runs table (schema applied by
//     the sql/ migrations at startup).
//   - List recent runs for the /bench/runs endpoint and the CLI.
//
// The distribution map is stored as a JSON text column; SQLite has no
// native map type and the consumers only ever read it back whole.

package bench

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// Store persists benchmark results.
type Store struct {
	db *sql.DB
}

// NewStore wraps an open database handle.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// RunRow is one persisted benchmark run.
type RunRow struct {
	ID             int64       `json:"id"`
	Strategy       string      `json:"strategy"`
	FirstGuess     string      `json:"first_guess,omitempty"`
	Words          int         `json:"words"`
	Solved         int         `json:"solved"`
	Failed         int         `json:"failed"`
	MinGuesses     int         `json:"min_guesses"`
	MaxGuesses     int         `json:"max_guesses"`
	AvgGuesses     float64     `json:"avg_guesses"`
	Distribution   map[int]int `json:"distribution"`
	DurationMs     int64       `json:"duration_ms"`
	WordsPerSecond float64     `json:"words_per_sec"`
	CreatedAt      time.Time   `json:"created_at"`
}

// SaveResult inserts a completed run and returns its row id.
func (s *Store) SaveResult(ctx context.Context, r *Result) (int64, error) {
	dist, err := json.Marshal(r.Distribution)
	if err != nil {
		return 0, fmt.Errorf("marshal distribution: %w", err)
	}

	out, err := s.db.ExecContext(ctx, `
        INSERT INTO bench_runs
            (strategy, first_guess, words, solved, failed,
             min_guesses, max_guesses, avg_guesses,
             distribution, duration_ms, words_per_sec)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Strategy, r.FirstGuess, r.Words, r.Solved, r.Failed,
		r.MinGuesses, r.MaxGuesses, r.AvgGuesses,
		string(dist), r.Duration.Milliseconds(), r.WordsPerSecond,
	)
	if err != nil {
		return 0, fmt.Errorf("insert bench run: %w", err)
	}
	return out.LastInsertId()
}

// RecentRuns lists the newest runs, most recent first.
// Limit defaults to 20 when non-positive.
func (s *Store) RecentRuns(ctx context.Context, limit int) ([]RunRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
        SELECT id, strategy, first_guess, words, solved, failed,
               min_guesses, max_guesses, avg_guesses,
               distribution, duration_ms, words_per_sec, created_at
        FROM bench_runs
        ORDER BY id DESC
        LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query bench runs: %w", err)
	}
	defer rows.Close()

	var out []RunRow
	for rows.Next() {
		var (
			row  RunRow
			dist string
		)
		if err := rows.Scan(
			&row.ID, &row.Strategy, &row.FirstGuess,
			&row.Words, &row.Solved, &row.Failed,
			&row.MinGuesses, &row.MaxGuesses, &row.AvgGuesses,
			&dist, &row.DurationMs, &row.WordsPerSecond, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan bench run: %w", err)
		}
		if err := json.Unmarshal([]byte(dist), &row.Distribution); err != nil {
			return nil, fmt.Errorf("decode distribution for run %d: %w", row.ID, err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
