package memory

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// NonceStore is the single-process replacement for the Redis store.
type NonceStore struct {
	mu      sync.Mutex
	pending map[string]time.Time
	now     func() time.Time
}

func NewNonceStore() *NonceStore {
	return &NonceStore{pending: make(map[string]time.Time), now: time.Now}
}

func (s *NonceStore) Remember(_ context.Context, nonce string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()
	if _, ok := s.pending[nonce]; ok {
		return fmt.Errorf("nonce %q already issued", nonce)
	}
	s.pending[nonce] = s.now().Add(ttl)
	return nil
}

func (s *NonceStore) Consume(_ context.Context, nonce string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()
	if _, ok := s.pending[nonce]; !ok {
		return false, nil
	}
	delete(s.pending, nonce)
	return true, nil
}

func (s *NonceStore) evict() {
	now := s.now()
	for n, exp := range s.pending {
		if !now.Before(exp) {
			delete(s.pending, n)
		}
	}
}
