package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists in the
	// database. The unique constraint on users.username is the sole
	// authority on duplicates; there is no application-level pre-check.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailTaken = errors.New("email already exists")

	// ErrUserNotFound is returned when a query expected to match exactly one
	// user record produces an empty result set, or when a profile update
	// targets a user that no longer exists.
	ErrUserNotFound = errors.New("user not found")
)
