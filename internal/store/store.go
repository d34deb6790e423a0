// Package store persists app state in a single-user SQLite database:
// the live lesson attempt, the progression ledger, and small
// preferences like the last-played topic.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle. It implements the persistence
// interfaces of the session and progression packages.
type Store struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas and creates the schema if missing.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, log: logrus.StandardLogger()}, nil
}

// SetLogger replaces the store's logger.
func (s *Store) SetLogger(log logrus.FieldLogger) {
	if log != nil {
		s.log = log
	}
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. The session and ledger tables hold one
// JSON document each; prefs is a plain key/value table.
func migrate(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempt (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS ledger (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			payload TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS prefs (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// singleRow reads the payload of a one-row table. Missing row returns
// sql.ErrNoRows.
func (s *Store) singleRow(table string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRow("SELECT payload FROM " + table + " WHERE id = 1").Scan(&payload)
	return payload, err
}

func (s *Store) putSingleRow(table string, payload []byte) error {
	_, err := s.db.Exec(
		"INSERT INTO "+table+" (id, payload) VALUES (1, ?) "+
			"ON CONFLICT (id) DO UPDATE SET payload = excluded.payload",
		string(payload))
	return err
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ORGANIQ_DB environment variable
// 2. $XDG_DATA_HOME/organiq/organiq.db
// 3. ~/.local/share/organiq/organiq.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ORGANIQ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "organiq", "organiq.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
