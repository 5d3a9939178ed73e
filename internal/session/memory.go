package session

import (
	"context"
	"sync"
	"time"

	"eduportal/internal/domain"
)

type memoryEntry struct {
	user      domain.User
	expiresAt time.Time
}

// MemoryStore is the single-process session store. Expired entries are dropped
// on read.
type MemoryStore struct {
	mutex   sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get holds the lock across the expiry check and the delete of an expired
// entry.
func (s *MemoryStore) Get(ctx context.Context, token string) (*domain.User, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	entry, ok := s.entries[key(token)]
	if !ok {
		return nil, ErrNotFound
	}
	if !entry.expiresAt.IsZero() && !s.now().Before(entry.expiresAt) {
		delete(s.entries, key(token))
		return nil, ErrNotFound
	}
	user := entry.user.Clone()
	return &user, nil
}

func (s *MemoryStore) Set(ctx context.Context, token string, user domain.User) error {
	entry := memoryEntry{user: user.Clone()}
	if s.ttl > 0 {
		entry.expiresAt = s.now().Add(s.ttl)
	}

	s.mutex.Lock()
	s.entries[key(token)] = entry
	s.mutex.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mutex.Lock()
	delete(s.entries, key(token))
	s.mutex.Unlock()
	return nil
}
