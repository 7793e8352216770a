package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the snapshot in process memory. It backs tests and
// throwaway sessions.
type MemoryStore struct {
	mu    sync.RWMutex
	data  []byte
	saves int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Seed sets the stored payload without counting a save.
func (s *MemoryStore) Seed(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte(nil), data...)
}

// Saves reports how many times Save succeeded.
func (s *MemoryStore) Saves() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saves
}

func (s *MemoryStore) Load(ctx context.Context) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, false, nil
	}
	return append([]byte(nil), s.data...), true, nil
}

func (s *MemoryStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append([]byte{}, data...)
	s.saves++
	return nil
}

func (s *MemoryStore) Close() error { return nil }
