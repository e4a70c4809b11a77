package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"account-service/internal/auth/credentials"
	"account-service/internal/session"
)

// DefaultSessionTTL bounds a session's lifetime unless overridden via
// configuration.
const DefaultSessionTTL = 24 * time.Hour

// Authenticator orchestrates registration and login over the credential
// store, the password hasher, and the session store. It holds no locks
// of its own; concurrency control lives inside the stores.
type Authenticator struct {
	users      Store
	sessions   session.Store
	sessionTTL time.Duration
}

func NewAuthenticator(users Store, sessions session.Store, sessionTTL time.Duration) *Authenticator {
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Authenticator{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
	}
}

// Register creates a new account and establishes a session for it.
// On success exactly one user and one session exist that did not
// before; a duplicate username fails with ErrUsernameTaken whether it
// was found up front or lost a concurrent-create race.
func (a *Authenticator) Register(ctx context.Context, username, password string) (*User, *session.Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, nil, ErrInvalidInput
	}

	_, err := a.users.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, nil, ErrUsernameTaken
	case !errors.Is(err, ErrNotFound):
		return nil, nil, fmt.Errorf("auth: lookup failed: %w", err)
	}

	digest, salt, err := credentials.Hash(password)
	if err != nil {
		return nil, nil, fmt.Errorf("auth: hashing failed: %w", err)
	}

	user, err := a.users.Create(ctx, username, digest, salt)
	if err != nil {
		if errors.Is(err, ErrConflict) {
			// lost the race to a concurrent registration
			return nil, nil, ErrUsernameTaken
		}
		return nil, nil, fmt.Errorf("auth: create failed: %w", err)
	}

	sess, err := a.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, sess, nil
}

// Login verifies the password against the stored credential and
// establishes a new session. Unknown usernames and wrong passwords
// return the identical ErrInvalidCredentials; prior sessions for the
// user stay valid.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*User, *session.Session, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, nil, ErrInvalidCredentials
	}

	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("auth: lookup failed: %w", err)
	}

	ok, err := credentials.Verify(password, user.Digest, user.Salt)
	if err != nil {
		// corrupt stored material is an operator problem, not a
		// wrong password
		return nil, nil, err
	}
	if !ok {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := a.createSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, sess, nil
}

// ResolveSession maps a session identifier to its user. Absent,
// expired, or empty identifiers resolve to (nil, nil) — anonymous —
// so callers can treat "not logged in" as a value, not a fault.
func (a *Authenticator) ResolveSession(ctx context.Context, sessionID string) (*User, error) {
	if sessionID == "" {
		return nil, nil
	}

	sess, err := a.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("auth: session lookup failed: %w", err)
	}
	if sess == nil {
		return nil, nil
	}
	if sess.Expired(time.Now()) {
		_ = a.sessions.Delete(ctx, sessionID)
		return nil, nil
	}

	user, err := a.users.FindByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// session outlived the account
			_ = a.sessions.Delete(ctx, sessionID)
			return nil, nil
		}
		return nil, fmt.Errorf("auth: lookup failed: %w", err)
	}

	return user, nil
}

// Logout destroys the session. It is idempotent: an unknown or
// already-destroyed identifier is not an error.
func (a *Authenticator) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return a.sessions.Delete(ctx, sessionID)
}

func (a *Authenticator) createSession(ctx context.Context, userID string) (*session.Session, error) {
	sessionID, err := session.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("auth: session id generation failed: %w", err)
	}

	now := time.Now()
	sess := session.Session{
		SessionID: sessionID,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}

	if err := a.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("auth: session create failed: %w", err)
	}

	return &sess, nil
}
