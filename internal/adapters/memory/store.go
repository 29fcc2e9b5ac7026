// Package memory provides the in-memory ports.DocumentStore used by the
// CLI and by tests.
package memory

import (
	"context"
	"sync"

	"github.com/oxblood/morph/pkg/domain"
)

// Store implements ports.DocumentStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*domain.Document
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*domain.Document),
	}
}

// Save persists the document in memory. Documents are immutable values, so
// storing the reference is isolation enough.
func (s *Store) Save(ctx context.Context, sessionID string, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = doc
	return nil
}

// Load retrieves the document from memory.
func (s *Store) Load(ctx context.Context, sessionID string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return doc, nil
}

// Delete removes the document.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active sessions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	return sessions, nil
}
