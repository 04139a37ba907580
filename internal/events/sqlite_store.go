package events

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/raysh454/phishlens/internal/logging"
)

//go:embed schema.sql
var schemaFS embed.FS

// SQLiteStore is a Store backed by a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	owned  bool
	logger logging.Logger
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the database at path and applies the
// schema. Use ":memory:" for a throwaway store. The returned store owns the
// connection and closes it on Close.
func OpenSQLite(path string, logger logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening events database: %w", err)
	}
	// SQLite serialises writers; one connection also keeps ":memory:" a
	// single database.
	db.SetMaxOpenConns(1)

	s, err := NewSQLiteStore(db, logger)
	if err != nil {
		db.Close()
		return nil, err
	}
	s.owned = true
	return s, nil
}

// NewSQLiteStore runs migrations from schema.sql on db and returns a store
// using it. The caller keeps ownership of db.
func NewSQLiteStore(db *sql.DB, logger logging.Logger) (*SQLiteStore, error) {
	if db == nil {
		return nil, fmt.Errorf("db is nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is nil")
	}
	if err := applySchema(db); err != nil {
		return nil, err
	}
	return &SQLiteStore{
		db:     db,
		logger: logger.With(logging.Field{Key: "component", Value: "events-store"}),
	}, nil
}

func applySchema(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma %q: %w", pragma, err)
		}
	}

	schemaSQL, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("failed to read schema.sql: %w", err)
	}
	if _, err := db.Exec(string(schemaSQL)); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Add inserts e. A zero TS is replaced with the current time and the URL is
// truncated to MaxURLLength characters.
func (s *SQLiteStore) Add(ctx context.Context, e *Event) (*Event, error) {
	if e == nil {
		return nil, ErrNilEvent
	}
	if e.URL == "" {
		return nil, ErrNoURL
	}

	stored := *e
	stored.URL = TruncateURL(e.URL)
	if stored.TS == 0 {
		stored.TS = Now()
	}
	if stored.Reasons == nil {
		stored.Reasons = []string{}
	}

	reasonsJSON, err := json.Marshal(stored.Reasons)
	if err != nil {
		return nil, fmt.Errorf("marshal reasons: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO events(url, risk_score, reasons_json, ts) VALUES (?, ?, ?, ?)`,
		stored.URL, stored.RiskScore, string(reasonsJSON), stored.TS)
	if err != nil {
		return nil, fmt.Errorf("insert event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("event id: %w", err)
	}
	stored.ID = id

	s.logger.Debug("event stored",
		logging.Field{Key: "id", Value: id},
		logging.Field{Key: "risk_score", Value: stored.RiskScore})

	return &stored, nil
}

// List returns up to limit events ordered by ts then id, newest first.
// A negative limit returns every event.
func (s *SQLiteStore) List(ctx context.Context, limit int) ([]Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, url, risk_score, reasons_json, ts FROM events ORDER BY ts DESC, id DESC LIMIT ?`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	out := []Event{}
	for rows.Next() {
		var (
			e           Event
			reasonsJSON string
		)
		if err := rows.Scan(&e.ID, &e.URL, &e.RiskScore, &reasonsJSON, &e.TS); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if err := json.Unmarshal([]byte(reasonsJSON), &e.Reasons); err != nil {
			s.logger.Warn("malformed reasons_json",
				logging.Field{Key: "id", Value: e.ID}, logging.Err(err))
		}
		if e.Reasons == nil {
			e.Reasons = []string{}
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return out, nil
}

// Close closes the database if the store opened it.
func (s *SQLiteStore) Close() error {
	if s == nil || !s.owned {
		return nil
	}
	return s.db.Close()
}
