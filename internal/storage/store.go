package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: snapshot not found")

// SnapshotKey is the fixed key the serialized app state lives under in every
// backend.
const SnapshotKey = "habitd_state"

// SnapshotStore persists the single serialized AppState blob. Load returns
// ErrNotFound when no snapshot has ever been saved.
type SnapshotStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, blob []byte) error
	Close() error
}
