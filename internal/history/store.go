// Package history keeps a local record of the vanishes this client created,
// so a share URL can be recovered before it expires.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const busyTimeoutMS = 5000

// Entry is one created vanish as recorded locally. It says nothing about
// whether the server still holds the record.
type Entry struct {
	Locator   string    `json:"locator"`
	ShareURL  string    `json:"url"`
	Title     string    `json:"title,omitempty"`
	Expiry    string    `json:"expiry"`
	OneTime   bool      `json:"one_time"`
	CreatedAt time.Time `json:"created_at"`
}

// Store wraps the SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database and bootstraps the schema.
func Open(path string) (*Store, error) {
	dsn, err := sqliteDSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := configureDB(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record inserts one created vanish. Re-recording the same locator replaces
// the previous row.
func (s *Store) Record(ctx context.Context, e Entry) error {
	if e.Locator == "" {
		return fmt.Errorf("locator is required")
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO shares (locator, url, title, expiry, one_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Locator, e.ShareURL, e.Title, e.Expiry, boolToInt(e.OneTime), e.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

// List returns recorded shares, most recent first.
func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT locator, url, title, expiry, one_time, created_at
		 FROM shares ORDER BY created_at DESC, locator`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var oneTime int
		var createdAt string
		if err := rows.Scan(&e.Locator, &e.ShareURL, &e.Title, &e.Expiry, &oneTime, &createdAt); err != nil {
			return nil, err
		}
		e.OneTime = oneTime != 0
		if parsed, parseErr := time.Parse(time.RFC3339, createdAt); parseErr == nil {
			e.CreatedAt = parsed
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes every recorded share.
func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM shares`)
	return err
}

func configureDB(db *sql.DB) error {
	db.SetMaxOpenConns(1)
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		fmt.Sprintf("PRAGMA busy_timeout = %d;", busyTimeoutMS),
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS shares (
		locator    TEXT PRIMARY KEY,
		url        TEXT NOT NULL,
		title      TEXT NOT NULL DEFAULT '',
		expiry     TEXT NOT NULL DEFAULT '',
		one_time   INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL
	)`)
	return err
}

func sqliteDSN(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("history db path is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: abs}
	return u.String(), nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
