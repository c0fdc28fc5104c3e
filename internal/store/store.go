package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists each collection as a sibling JSON document inside a data
// directory. Documents are rewritten wholesale on every save; the in-memory
// copies held by the repositories are the working state and the store is the
// durable mirror.
type Store struct {
	dir string
}

// New creates the data directory if needed so first-run saves succeed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load reads the named document into v. A missing file is not an error: v is
// left untouched so the caller's default takes effect.
func (s *Store) Load(name string, v interface{}) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// Save rewrites the named document. The write goes through a temp file and a
// rename so a crash mid-write never leaves a truncated document behind.
func (s *Store) Save(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, s.path(name)); err != nil {
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}
