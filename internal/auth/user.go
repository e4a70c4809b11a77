// Package auth implements credential validation and the session
// lifecycle: registration, login, session resolution, and logout.
package auth

import "time"

// User is an account identity record. Digest and Salt are opaque
// credential material owned by the store/hasher boundary; they must
// never be logged, serialized to a client, or compared with plain
// equality.
type User struct {
	ID        string
	Username  string // unique, case-sensitive, immutable after creation
	Digest    string
	Salt      string
	CreatedAt time.Time
}
