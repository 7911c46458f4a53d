package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// FileStore keeps one JSON file per key inside a state directory. Writes go
// through a temp file and rename so a crash never leaves a half-written
// record behind.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Load(key string, v any) (bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}

	if !decode(raw, v) {
		log.Printf("[STORAGE] discarding unreadable record %q", key)
		return false, nil
	}
	return true, nil
}

func (s *FileStore) Save(key string, v any) error {
	raw, err := encode(v)
	if err != nil {
		return err
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("replace %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
