package service

import (
	"context"

	"github.com/MKhiriev/go-user-portal/models"
)

// AuthService defines the contract for user registration and credential
// verification. Implementations own password hashing; plaintext passwords
// never cross this boundary outbound.
type AuthService interface {
	// Register creates a new account from the submitted form fields.
	// The password is hashed before persistence; a hashing failure aborts
	// the attempt. Returns the persisted user (with server-assigned
	// UserID) or:
	//   - ErrInvalidDataProvided if username, email, or password is empty.
	//   - A wrapped store.ErrUsernameTaken / store.ErrEmailTaken when the
	//     database unique constraint rejects the insert.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates an existing user by exact username match and
	// bcrypt comparison. Returns the authenticated user record or:
	//   - ErrInvalidDataProvided if username or password is empty.
	//   - A wrapped store.ErrUserNotFound when no such account exists.
	//   - ErrWrongPassword when the candidate password does not match.
	// A password mismatch is a normal negative result, not a failure of
	// the service.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
}

// ProfileService defines the contract for reading and mutating the three
// mutable profile fields.
type ProfileService interface {
	// GetByUsername returns the public profile of the named user.
	// Returns a wrapped store.ErrUserNotFound when no such account exists.
	GetByUsername(ctx context.Context, username string) (models.User, error)

	// GetByID returns the profile owned by the given internal identifier.
	// Used to pre-fill the edit form for the session's own user.
	GetByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile overwrites firstname, lastname, and bio of the
	// session's own user. The overwrite is unconditional: fields left
	// empty in the form clear the stored values. Returns a wrapped
	// store.ErrUserNotFound if the account vanished.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error
}
