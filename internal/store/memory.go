package store

import (
	"context"
	"sync"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// MemoryStore holds live sessions in process memory. It is the table of
// shared state the handlers operate on; session pointers stay stable so
// per-session locks and SSE registries survive a Save.
type MemoryStore struct {
	sessions map[string]*models.Session
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*models.Session),
	}
}

// Get retrieves a session by room code
func (s *MemoryStore) Get(_ context.Context, code string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, exists := s.sessions[code]
	if !exists {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Save stores a session under its room code
func (s *MemoryStore) Save(_ context.Context, sess *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sess.RoomCode] = sess
	return nil
}

// Delete removes a session
func (s *MemoryStore) Delete(_ context.Context, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, code)
	return nil
}

// Exists checks if a room code is taken
func (s *MemoryStore) Exists(_ context.Context, code string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.sessions[code]
	return exists, nil
}
