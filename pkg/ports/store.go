// Package ports defines the interfaces the editing core expects from its
// surroundings, keeping storage concerns out of the domain.
package ports

import (
	"context"

	"github.com/oxblood/morph/pkg/domain"
)

// DocumentStore defines the interface for persisting editing sessions.
// Documents are immutable values, so implementations may retain them by
// reference; they must never mutate a stored document.
type DocumentStore interface {
	// Save persists the document for a given session ID.
	Save(ctx context.Context, sessionID string, doc *domain.Document) error

	// Load retrieves the document for a given session ID.
	// Returns domain.ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*domain.Document, error)

	// Delete removes the document for a given session ID.
	Delete(ctx context.Context, sessionID string) error

	// List returns the IDs of all stored sessions.
	List(ctx context.Context) ([]string, error)
}
