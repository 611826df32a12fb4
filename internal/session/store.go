package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/invierte-coyoacan/invest-backend-go/internal/models"
)

// Session holds one user's filter state. State is session-local and never
// shared across sessions; only the dataset snapshot is shared, read-only.
type Session struct {
	ID        string                `json:"id"`
	Filters   models.PropertyFilter `json:"filters"`
	CreatedAt time.Time             `json:"created_at"`
	lastSeen  time.Time
}

// Store is an in-memory session registry with idle expiry.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
}

// NewStore creates a session store. Sessions idle longer than ttl are
// dropped by a background sweep.
func NewStore(ttl time.Duration) *Store {
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
	}

	go s.sweep()

	return s
}

// sweep removes expired sessions periodically.
func (s *Store) sweep() {
	ticker := time.NewTicker(s.ttl)
	defer ticker.Stop()

	for range ticker.C {
		s.prune(time.Now())
	}
}

func (s *Store) prune(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) >= s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Create registers a new session with an empty filter selection.
func (s *Store) Create() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	sess := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		lastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get returns the session with the given ID, refreshing its idle timer.
func (s *Store) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if ok {
		sess.lastSeen = time.Now()
	}
	return sess, ok
}

// SetFilters replaces the saved filter selection of a session.
func (s *Store) SetFilters(id string, filters models.PropertyFilter) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.Filters = filters
	sess.lastSeen = time.Now()
	return true
}
