package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // driver: sqlite
)

// Store keeps a local log of computed atomic weight results, backing the
// dashboard's latest-results view.
type Store struct {
	db *sql.DB
}

// Result is one computed atomic weight.
type Result struct {
	Symbol        string    `json:"symbol"`
	Source        string    `json:"source"` // isotope table source used
	AtomicWeightU float64   `json:"atomic_weight_u"`
	ComputedAt    time.Time `json:"computed_at"`
}

const schema = `
CREATE TABLE IF NOT EXISTS results (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  symbol TEXT NOT NULL,
  source TEXT NOT NULL,
  atomic_weight REAL NOT NULL,
  computed_at INTEGER NOT NULL
);
`

// Open opens (or creates) the results database and ensures the schema exists.
func Open(path string) (*Store, error) {
	if path == "" {
		path = "atomicweights.db"
	}
	dsn := "file:" + path + "?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening results db: %w", err)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error pinging results db: %w", err)
	}
	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating results schema: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record appends a computed result.
func (s *Store) Record(r Result) error {
	_, err := s.db.Exec(
		`INSERT INTO results (symbol, source, atomic_weight, computed_at) VALUES (?, ?, ?, ?);`,
		r.Symbol, r.Source, r.AtomicWeightU, r.ComputedAt.Unix())
	if err != nil {
		return fmt.Errorf("error inserting result: %w", err)
	}
	return nil
}

// Latest returns the n most recent results, newest first.
func (s *Store) Latest(n int) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT symbol, source, atomic_weight, computed_at FROM results ORDER BY id DESC LIMIT ?;`, n)
	if err != nil {
		return nil, fmt.Errorf("error querying results: %w", err)
	}
	defer rows.Close()

	results := make([]Result, 0, n)
	for rows.Next() {
		var r Result
		var computedAt int64
		if err := rows.Scan(&r.Symbol, &r.Source, &r.AtomicWeightU, &computedAt); err != nil {
			return nil, fmt.Errorf("error scanning result row: %w", err)
		}
		r.ComputedAt = time.Unix(computedAt, 0)
		results = append(results, r)
	}
	return results, rows.Err()
}
