// Package save persists game snapshots as JSON files. Writes go through a
// temp file and a rename, so a crash mid-save leaves the previous file whole.
package save

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"shadowmaster/internal/game"
)

// Store reads and writes one save file.
type Store struct {
	path string
}

// NewStore returns a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a save file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Save writes the snapshot atomically, creating parent directories as needed.
func (s *Store) Save(snap *game.Snapshot) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".save-*")
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("save: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	return nil
}

// Load reads the snapshot back. A missing file surfaces as an error
// satisfying errors.Is(err, os.ErrNotExist).
func (s *Store) Load() (*game.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	var snap game.Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("load: decode %s: %w", s.path, err)
	}
	return &snap, nil
}
