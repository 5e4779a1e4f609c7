package blocklist

import (
	"context"
	"sync"
	"time"

	"github.com/MihaiM21/47Gear-sub000/internal/logger"
)

// in-memory Store; per-process, non-durable. Each block schedules a
// one-shot unblock timer; expiry is also checked on read so a missed
// timer never extends a block.
type MemoryStore struct {
	mu      sync.Mutex
	blocked map[string]time.Time
}

// creates an empty in-memory blocklist
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blocked: make(map[string]time.Time),
	}
}

// puts an identifier under temporary denial
func (s *MemoryStore) Block(_ context.Context, identifier string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultBlockTTL
	}

	expiry := time.Now().Add(ttl)

	s.mu.Lock()
	s.blocked[identifier] = expiry
	s.mu.Unlock()

	logger.Warn("client blocked", "identifier", identifier, "until", expiry)

	// scheduled unblock; cancellation is unnecessary since a process
	// restart clears all blocks anyway
	time.AfterFunc(ttl, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		// only remove if not re-blocked with a later expiry
		if current, exists := s.blocked[identifier]; exists && !current.After(time.Now()) {
			delete(s.blocked, identifier)
		}
	})

	return nil
}

// reports whether an identifier is currently denied
func (s *MemoryStore) IsBlocked(_ context.Context, identifier string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiry, exists := s.blocked[identifier]
	if !exists {
		return false, nil
	}

	if time.Now().After(expiry) {
		delete(s.blocked, identifier)
		return false, nil
	}

	return true, nil
}

// lifts a denial early
func (s *MemoryStore) Unblock(_ context.Context, identifier string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blocked, identifier)

	return nil
}

// returns the number of currently blocked identifiers
func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.blocked), nil
}
