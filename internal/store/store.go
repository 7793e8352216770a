// Package store persists the snapshot under its well-known key. Backends are
// interchangeable byte stores; decoding and recovery from corrupt payloads
// happen in LoadSnapshot.
package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/agusx1211/warrior/internal/debug"
	"github.com/agusx1211/warrior/internal/snapshot"
)

// ErrUnsupportedBackend is returned by Open for an unknown backend name.
var ErrUnsupportedBackend = errors.New("unsupported store backend")

// Store is a durable single-key byte store. Save replaces the value
// wholesale; the last write wins.
type Store interface {
	Load(ctx context.Context) (data []byte, ok bool, err error)
	Save(ctx context.Context, data []byte) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open returns the backend named kind rooted in dir.
func Open(ctx context.Context, kind, dir string) (Store, error) {
	switch kind {
	case "", BackendFile:
		return NewFileStore(filepath.Join(dir, snapshot.Key+".json")), nil
	case BackendSQLite:
		s := NewSQLiteStore(filepath.Join(dir, "warrior.db"))
		if err := s.Init(ctx); err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, kind)
}

// LoadSnapshot reads and decodes the persisted snapshot. A payload that does
// not decode is logged and reported as absent.
func LoadSnapshot(ctx context.Context, st Store) (snapshot.Partial, bool, error) {
	data, ok, err := st.Load(ctx)
	if err != nil {
		return snapshot.Partial{}, false, err
	}
	if !ok {
		debug.Log("store", "no persisted snapshot")
		return snapshot.Partial{}, false, nil
	}
	p, err := snapshot.Decode(data)
	if err != nil {
		debug.LogKV("store", "discarding corrupt snapshot", "bytes", len(data), "error", err)
		return snapshot.Partial{}, false, nil
	}
	debug.LogKV("store", "snapshot loaded", "bytes", len(data))
	return p, true, nil
}

// SaveSnapshot encodes and persists s.
func SaveSnapshot(ctx context.Context, st Store, s snapshot.Snapshot) error {
	data, err := snapshot.Encode(s)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := st.Save(ctx, data); err != nil {
		return fmt.Errorf("saving snapshot: %w", err)
	}
	debug.LogKV("store", "snapshot saved", "bytes", len(data))
	return nil
}
