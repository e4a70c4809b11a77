// Package store provides the credential store backends: an in-process
// map for tests and local runs, and PostgreSQL for production.
package store

import (
	"context"
	"sync"
	"time"

	"account-service/internal/auth"

	"github.com/google/uuid"
)

// Memory is a credential store backed by an in-process map. The mutex
// makes check-then-insert atomic, so concurrent registrations for the
// same username yield exactly one success.
type Memory struct {
	mu     sync.RWMutex
	byName map[string]*auth.User
	byID   map[string]*auth.User
}

func NewMemory() *Memory {
	return &Memory{
		byName: make(map[string]*auth.User),
		byID:   make(map[string]*auth.User),
	}
}

func (m *Memory) FindByUsername(_ context.Context, username string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byName[username]
	if !ok {
		return nil, auth.ErrNotFound
	}
	u := *user
	return &u, nil
}

func (m *Memory) Create(_ context.Context, username, digest, salt string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.byName[username]; exists {
		return nil, auth.ErrConflict
	}

	user := &auth.User{
		ID:        uuid.NewString(),
		Username:  username,
		Digest:    digest,
		Salt:      salt,
		CreatedAt: time.Now(),
	}
	m.byName[username] = user
	m.byID[user.ID] = user

	u := *user
	return &u, nil
}

func (m *Memory) FindByID(_ context.Context, id string) (*auth.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.byID[id]
	if !ok {
		return nil, auth.ErrNotFound
	}
	u := *user
	return &u, nil
}
