package domain

import "github.com/google/uuid"

// NewID returns a fresh globally unique entity id. Every entity pool
// (layers, animations, blocks) draws from the same generator.
func NewID() string {
	return uuid.NewString()
}
