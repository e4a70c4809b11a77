package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"account-service/internal/auth"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func userRows(id, username string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "username", "password_digest", "password_salt", "created_at"}).
		AddRow(id, username, "digest", "salt", time.Now())
}

func TestPostgresFindByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	p := NewPostgres(db)

	mock.ExpectQuery(`SELECT id, username, password_digest, password_salt, created_at`).
		WithArgs("alice").
		WillReturnRows(userRows("id-1", "alice"))

	user, err := p.FindByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "digest", user.Digest)
	assert.Equal(t, "salt", user.Salt)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByUsernameNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	p := NewPostgres(db)

	mock.ExpectQuery(`SELECT id, username`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := p.FindByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, auth.ErrNotFound)
}

func TestPostgresCreate(t *testing.T) {
	db, mock := newMockDB(t)
	p := NewPostgres(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "digest", "salt").
		WillReturnRows(userRows("id-1", "alice"))

	user, err := p.Create(context.Background(), "alice", "digest", "salt")
	require.NoError(t, err)
	assert.Equal(t, "id-1", user.ID)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCreateUniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	p := NewPostgres(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "digest", "salt").
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := p.Create(context.Background(), "alice", "digest", "salt")
	assert.ErrorIs(t, err, auth.ErrConflict)
}

func TestPostgresCreateOtherError(t *testing.T) {
	db, mock := newMockDB(t)
	p := NewPostgres(db)

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "digest", "salt").
		WillReturnError(sql.ErrConnDone)

	_, err := p.Create(context.Background(), "alice", "digest", "salt")
	require.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrConflict)
}
