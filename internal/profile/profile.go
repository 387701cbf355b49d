// Package profile persists the single user profile across restarts.
package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound indicates no name has been stored yet.
var ErrNotFound = errors.New("profile name not stored")

// Store loads and saves the user name.
type Store interface {
	LoadName() (string, error)
	SaveName(string) error
}

// FileStore keeps the profile as {"name": "..."} in one JSON file.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

type fileRecord struct {
	Name string `json:"name"`
}

// LoadName returns ErrNotFound when the file is missing or holds no name.
func (s *FileStore) LoadName() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read profile %q: %w", s.path, err)
	}

	var record fileRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", fmt.Errorf("decode profile %q: %w", s.path, err)
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return "", ErrNotFound
	}
	return name, nil
}

// SaveName replaces the file atomically.
func (s *FileStore) SaveName(name string) error {
	data, err := json.Marshal(fileRecord{Name: name})
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create profile dir %q: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".profile-*.json")
	if err != nil {
		return fmt.Errorf("create temp profile: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp profile: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("chmod temp profile: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace profile %q: %w", s.path, err)
	}
	return nil
}

// LoadOrDefault returns the stored name, or fallback when none is stored.
func LoadOrDefault(store Store, fallback string) (string, error) {
	name, err := store.LoadName()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fallback, nil
		}
		return fallback, err
	}
	return name, nil
}
