package store

import (
	"context"
	"sync"

	"chipscope/internal/fleet"
	"chipscope/pkg/platform/sentinel"
)

// MemoryStore keeps the latest snapshot in process memory. Default store for
// single-instance deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	latest *fleet.Snapshot
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Put replaces the latest snapshot.
func (s *MemoryStore) Put(ctx context.Context, snap *fleet.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.latest = snap
	return nil
}

// Latest returns the most recent snapshot.
func (s *MemoryStore) Latest(ctx context.Context) (*fleet.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, sentinel.ErrNotFound
	}
	return s.latest, nil
}

// Health always succeeds for the in-memory store.
func (s *MemoryStore) Health(ctx context.Context) error {
	return nil
}
