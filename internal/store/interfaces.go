package store

import (
	"context"

	"github.com/MKhiriev/go-user-portal/models"
)

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser persists a new user and returns the record with
	// server-assigned fields populated (UserID, CreatedAt).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves a user by exact username match.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID retrieves a user by internal identifier.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateProfile overwrites the three mutable profile fields of the
	// given user. The update is unconditional: fields absent from the
	// submitted form clear the stored values.
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) error
}
