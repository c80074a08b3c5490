package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists the snapshot as a single JSON file, written to a temp
// file and renamed so a crash mid-write never leaves a torn snapshot.
type FileStore struct {
	path string
}

func NewFileStore(path string) (*FileStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("storage: empty snapshot path")
	}
	return &FileStore{path: path}, nil
}

func (s *FileStore) Load(_ context.Context) ([]byte, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return raw, nil
}

func (s *FileStore) Save(_ context.Context, blob []byte) error {
	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Close() error {
	return nil
}
