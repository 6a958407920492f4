// internal/session/memory.go

package session

import (
	"context"
	"sync"
	"time"

	"pegrio-chatbot/internal/common/metrics"
	"pegrio-chatbot/internal/models"
)

type memoryEntry struct {
	sess      *models.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory. Expired entries are
// dropped lazily on read and eagerly by a background sweep.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	ttl     time.Duration
	done    chan struct{}
}

// NewMemoryStore returns a store whose entries expire after ttl. The
// caller must Close it to stop the sweep goroutine.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, id)
		s.mu.Unlock()
		metrics.ActiveSessions.Dec()
		return nil, ErrNotFound
	}
	return entry.sess, nil
}

func (s *MemoryStore) Put(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[sess.ID]; !ok {
		metrics.ActiveSessions.Inc()
	}
	s.entries[sess.ID] = &memoryEntry{
		sess:      sess,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[id]; ok {
		delete(s.entries, id)
		metrics.ActiveSessions.Dec()
	}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

// Close stops the expiry sweep.
func (s *MemoryStore) Close() {
	close(s.done)
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, entry := range s.entries {
				if now.After(entry.expiresAt) {
					delete(s.entries, id)
					metrics.ActiveSessions.Dec()
				}
			}
			s.mu.Unlock()
		}
	}
}
