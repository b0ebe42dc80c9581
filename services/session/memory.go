// File: services/session/memory.go
package session

import (
	"context"
	"sync"
	"time"

	"goodfoods/models"
	"goodfoods/utils"
)

type memoryEntry struct {
	sess      models.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Suitable for the CLI
// and for single-instance deployments without Redis.
type MemoryStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]memoryEntry
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = utils.DefaultSessionTTL
	}
	return &MemoryStore{
		ttl:      ttl,
		sessions: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}
	sess := entry.sess
	sess.Turns = append([]models.Turn(nil), entry.sess.Turns...)
	return &sess, nil
}

func (s *MemoryStore) Save(ctx context.Context, sess *models.Session) error {
	copied := *sess
	copied.Turns = append([]models.Turn(nil), sess.Turns...)
	s.mu.Lock()
	s.sessions[sess.ID] = memoryEntry{
		sess:      copied,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// PruneExpired drops every expired session and reports how many were
// removed. Get already drops expired entries lazily; pruning keeps
// abandoned sessions from pinning memory between lookups.
func (s *MemoryStore) PruneExpired() int {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}
