// Package session owns session identity: identifier generation, the
// store contract, and the cookie transport helpers the HTTP layer uses.
package session

import (
	"context"
	"time"
)

// Session binds a session identifier to a user for a bounded lifetime.
// It stores identity pointers only, never credential material.
type Session struct {
	SessionID string    // unique, unguessable identifier
	UserID    string    // references the owning user
	CreatedAt time.Time // when the session was established
	ExpiresAt time.Time // absolute expiry time
}

// Expired reports whether the session is past its expiry at now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store persists sessions keyed by identifier. Implementations must be
// safe for concurrent use; operations on distinct identifiers must not
// interfere.
type Store interface {
	Create(ctx context.Context, s Session) error
	// Get returns nil, nil when no session exists for the identifier.
	Get(ctx context.Context, sessionID string) (*Session, error)
	// Delete is idempotent: deleting an unknown identifier is not an error.
	Delete(ctx context.Context, sessionID string) error
}
