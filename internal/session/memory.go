package session

import (
	"context"
	"sync"
)

type memoryStore struct {
	mu     sync.RWMutex
	guests map[string][]byte
}

// NewMemoryStore is an in-process Store for tests and single-node dev runs.
func NewMemoryStore() Store {
	return &memoryStore{guests: make(map[string][]byte)}
}

func (s *memoryStore) GetGuestUser(_ context.Context, token string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	raw, ok := s.guests[token]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

func (s *memoryStore) SetGuestUser(_ context.Context, token string, raw []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(raw))
	copy(buf, raw)
	s.guests[token] = buf
	return nil
}
