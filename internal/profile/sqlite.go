package profile

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const nameKey = "name"

// SQLiteStore keeps profile fields in a key/value table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating when needed) the profile database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create profile dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open profile database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS profile (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT (strftime('%s','now'))
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create profile table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// LoadName returns ErrNotFound when no name row exists.
func (s *SQLiteStore) LoadName() (string, error) {
	var name string
	err := s.db.QueryRow(`SELECT value FROM profile WHERE key = ?`, nameKey).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("query profile name: %w", err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

// SaveName upserts the name row.
func (s *SQLiteStore) SaveName(name string) error {
	_, err := s.db.Exec(
		`INSERT INTO profile (key, value, updated_at) VALUES (?, ?, strftime('%s','now'))
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		nameKey, name,
	)
	if err != nil {
		return fmt.Errorf("save profile name: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
