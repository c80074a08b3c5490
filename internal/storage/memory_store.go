package storage

import "context"

// MemoryStore holds the snapshot in memory. Used by tests and as a harmless
// fallback when no durable backend can be opened.
type MemoryStore struct {
	blob    []byte
	present bool
	saveErr error
	saves   int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed pre-loads a snapshot as if it had been saved by an earlier session.
func (s *MemoryStore) Seed(blob []byte) {
	s.blob = append([]byte(nil), blob...)
	s.present = true
}

// FailSaves makes every subsequent Save return err.
func (s *MemoryStore) FailSaves(err error) {
	s.saveErr = err
}

func (s *MemoryStore) Saves() int {
	return s.saves
}

func (s *MemoryStore) Load(_ context.Context) ([]byte, error) {
	if !s.present {
		return nil, ErrNotFound
	}
	return append([]byte(nil), s.blob...), nil
}

func (s *MemoryStore) Save(_ context.Context, blob []byte) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.blob = append([]byte(nil), blob...)
	s.present = true
	s.saves++
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
