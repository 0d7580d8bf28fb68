package credential_service

import (
	"context"
	"sync"
)

type MemoryStore struct {
	mu   sync.RWMutex
	keys map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{keys: make(map[string]string)}
}

func (s *MemoryStore) Register(_ context.Context, lawyerIdentifier, apiKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.keys[lawyerIdentifier] = apiKey
	return nil
}

func (s *MemoryStore) Lookup(_ context.Context, lawyerIdentifier string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key, ok := s.keys[lawyerIdentifier]
	return key, ok, nil
}
