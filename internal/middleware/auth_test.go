package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"account-service/internal/auth"
	"account-service/internal/middleware"
	"account-service/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	users map[string]*auth.User
	err   error
}

func (f *fakeResolver) ResolveSession(_ context.Context, sessionID string) (*auth.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[sessionID], nil
}

func protected(t *testing.T, resolver middleware.SessionResolver) http.Handler {
	t.Helper()
	mw := middleware.NewAuthMiddleware(resolver)
	return mw.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.UserIDFromContext(r.Context())
		require.True(t, ok)
		w.Write([]byte(id))
	}))
}

func TestRequireAuthValidSession(t *testing.T) {
	resolver := &fakeResolver{users: map[string]*auth.User{
		"sid-1": {ID: "user-1", Username: "alice"},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: "sid-1"})

	w := httptest.NewRecorder()
	protected(t, resolver).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-1", w.Body.String())
}

func TestRequireAuthRejections(t *testing.T) {
	tests := []struct {
		name     string
		resolver *fakeResolver
		cookie   *http.Cookie
	}{
		{
			name:     "no cookie",
			resolver: &fakeResolver{},
		},
		{
			name:     "empty cookie value",
			resolver: &fakeResolver{},
			cookie:   &http.Cookie{Name: session.CookieName, Value: ""},
		},
		{
			name:     "unknown session",
			resolver: &fakeResolver{users: map[string]*auth.User{}},
			cookie:   &http.Cookie{Name: session.CookieName, Value: "never-issued"},
		},
		{
			name:     "resolver fault",
			resolver: &fakeResolver{err: errors.New("store down")},
			cookie:   &http.Cookie{Name: session.CookieName, Value: "sid-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			w := httptest.NewRecorder()
			protected(t, tt.resolver).ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestUserIDFromContextAbsent(t *testing.T) {
	_, ok := middleware.UserIDFromContext(context.Background())
	assert.False(t, ok)
}
