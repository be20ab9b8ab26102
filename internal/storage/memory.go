package storage

import (
	"context"
	"sync"

	"github.com/tradi3/chatquest/internal/domain"
)

// MemoryStore is an in-process Store with no persistence. Service tests
// use it in place of the file store.
type MemoryStore struct {
	mu   sync.RWMutex
	snap *domain.Snapshot
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{snap: domain.NewSnapshot()}
}

func (s *MemoryStore) View(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.snap)
}

func (s *MemoryStore) Update(ctx context.Context, fn func(*domain.Snapshot) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work, err := cloneSnapshot(s.snap)
	if err != nil {
		return err
	}
	if err := fn(work); err != nil {
		return err
	}
	s.snap = work
	return nil
}

func (s *MemoryStore) CheckHealth(ctx context.Context) error {
	return s.View(ctx, func(*domain.Snapshot) error { return nil })
}

// Seed replaces the snapshot wholesale (test setup).
func (s *MemoryStore) Seed(snap *domain.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
}
