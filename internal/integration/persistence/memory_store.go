package persistence

import (
	"context"
	"sync"

	"github.com/finance-tracker/goals/internal/application/adapter"
)

// memoryStore keeps values in process memory. Nothing survives a restart.
type memoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemoryStore creates a new in-memory key-value store.
func NewMemoryStore() adapter.KeyValueStore {
	return &memoryStore{
		values: make(map[string][]byte),
	}
}

func (s *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), value...), true, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *memoryStore) HealthCheck() bool {
	return true
}
