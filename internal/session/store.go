// internal/session/store.go

// Package session persists conversation sessions across turns. Two
// implementations share one interface: an in-memory store for local
// development and tests, and a Redis store for deployments that must
// survive restarts. Both enforce the 24 hour expiry policy.
package session

import (
	"context"
	"errors"

	"pegrio-chatbot/internal/models"
)

// ErrNotFound is returned for unknown or expired session ids.
var ErrNotFound = errors.New("session not found")

// Store is the persistence contract the shell depends on. Put refreshes
// the TTL on every call, so an active conversation never expires
// mid-dialogue.
type Store interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Put(ctx context.Context, sess *models.Session) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
