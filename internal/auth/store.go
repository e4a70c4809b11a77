package auth

import "context"

// Store is the credential store contract: a durable mapping from
// username to account record. It is the only shared mutable resource
// in the subsystem; all mutation goes through Create.
type Store interface {
	// FindByUsername does a case-sensitive exact match and returns
	// ErrNotFound when no account exists.
	FindByUsername(ctx context.Context, username string) (*User, error)

	// Create inserts a new account with the given credential material
	// and returns the stored record with its assigned ID. The
	// uniqueness check and the insert are atomic with respect to
	// concurrent callers: for the same username, exactly one Create
	// succeeds and the rest return ErrConflict.
	Create(ctx context.Context, username, digest, salt string) (*User, error)

	// FindByID returns ErrNotFound when no account exists for the id.
	FindByID(ctx context.Context, id string) (*User, error)
}
