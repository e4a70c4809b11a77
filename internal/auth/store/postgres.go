package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"account-service/internal/auth"

	"github.com/lib/pq"
)

// pq error code for unique_violation
const uniqueViolation = "23505"

// Postgres is the durable credential store. Uniqueness is enforced by
// the users_username_unique index, so Create needs no separate
// existence check: a concurrent duplicate insert surfaces as a unique
// violation and maps to ErrConflict.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) FindByUsername(ctx context.Context, username string) (*auth.User, error) {
	return p.findBy(ctx, `
		SELECT id, username, password_digest, password_salt, created_at
		FROM users
		WHERE username = $1
	`, username)
}

func (p *Postgres) FindByID(ctx context.Context, id string) (*auth.User, error) {
	return p.findBy(ctx, `
		SELECT id, username, password_digest, password_salt, created_at
		FROM users
		WHERE id = $1
	`, id)
}

func (p *Postgres) findBy(ctx context.Context, query string, arg any) (*auth.User, error) {
	var user auth.User
	err := p.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Digest,
		&user.Salt,
		&user.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, auth.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: query failed: %w", err)
	}
	return &user, nil
}

func (p *Postgres) Create(ctx context.Context, username, digest, salt string) (*auth.User, error) {
	var user auth.User
	err := p.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password_digest, password_salt)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_digest, password_salt, created_at
	`, username, digest, salt).Scan(
		&user.ID,
		&user.Username,
		&user.Digest,
		&user.Salt,
		&user.CreatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, auth.ErrConflict
		}
		return nil, fmt.Errorf("store: insert failed: %w", err)
	}
	return &user, nil
}
