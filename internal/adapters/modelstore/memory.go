package modelstore

import (
	"context"
	"sync"
)

// MemoryStore is an in-memory ModelStore. Artifacts do not survive a process
// restart, so every startup retrains; useful for tests and ephemeral
// deployments.
type MemoryStore struct {
	mu        sync.RWMutex
	artifacts map[string][]byte
}

// NewMemoryStore creates a new in-memory model store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		artifacts: make(map[string][]byte),
	}
}

// Load retrieves a stored artifact, or (nil, nil) if absent
func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	artifact, ok := s.artifacts[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(artifact))
	copy(cp, artifact)
	return cp, nil
}

// Save stores an artifact
func (s *MemoryStore) Save(_ context.Context, key string, artifact []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]byte, len(artifact))
	copy(cp, artifact)
	s.artifacts[key] = cp
	return nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
