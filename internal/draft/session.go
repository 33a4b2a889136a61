package draft

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store holds every in-progress form session in memory, keyed by session ID.
// Sessions are value types; Get hands out a copy and mutations go back in
// through Set.
type Store struct {
	sessions map[string]Session
	mu       *sync.RWMutex
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		sessions: make(map[string]Session),
		mu:       &sync.RWMutex{},
		ttl:      ttl,
	}
}

func (s *Store) Create() Session {
	session := Session{
		ID:        uuid.NewString(),
		Step:      StepArtist,
		Draft:     NewDraft(),
		UpdatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session

	return session
}

func (s *Store) Get(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, false
	}
	return &session, true
}

func (s *Store) Set(session Session) {
	session.UpdatedAt = time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
}

func (s *Store) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}

// BeginSubmit marks the session as having an in-flight submission. It returns
// false when another submission already holds the mark, so a double click on
// the submit button cannot produce two orders.
func (s *Store) BeginSubmit(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.Submitting {
		return false
	}
	session.Submitting = true
	s.sessions[sessionID] = session
	return true
}

func (s *Store) EndSubmit(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	session.Submitting = false
	s.sessions[sessionID] = session
}

// PruneExpired drops sessions idle for longer than the store TTL and returns
// how many were removed.
func (s *Store) PruneExpired(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for id, session := range s.sessions {
		if session.Submitting {
			continue
		}
		if now.Sub(session.UpdatedAt) > s.ttl {
			delete(s.sessions, id)
			pruned++
		}
	}
	return pruned
}
