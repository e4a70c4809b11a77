package auth

import "errors"

var (
	// ErrInvalidInput rejects empty or whitespace-only usernames and
	// passwords before any store or hasher work happens.
	ErrInvalidInput = errors.New("auth: username and password must not be empty")

	// ErrUsernameTaken is returned by Register when the username
	// already has an account, including when a concurrent registration
	// won the race.
	ErrUsernameTaken = errors.New("auth: username already taken")

	// ErrInvalidCredentials is returned by Login for both an unknown
	// username and a wrong password, so the boundary never reveals
	// whether a username exists.
	ErrInvalidCredentials = errors.New("auth: invalid credentials")

	// ErrNotFound is the store sentinel for an absent user.
	ErrNotFound = errors.New("auth: user not found")

	// ErrConflict is the store sentinel for a username uniqueness
	// violation on create.
	ErrConflict = errors.New("auth: username already exists")
)
