package models

import (
	"database/sql"
	"time"
)

// User represents an account entity used for authentication and profile
// display. It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is assigned by the database on creation and never changes.
	UserID int64 `json:"-"`

	// Username is the unique public identifier of the account.
	// Immutable after registration; used for login and profile lookup.
	Username string `json:"username"`

	// Email is the unique contact address supplied at registration.
	// Immutable after registration.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST never contain the plaintext password and is never
	// exposed via JSON.
	PasswordHash string `json:"-"`

	// Firstname is an optional display field. It is the only profile
	// field that is rendered back as markup, so it passes through the
	// sanitizer before display.
	Firstname sql.NullString `json:"firstname"`

	// Lastname is an optional display field.
	Lastname sql.NullString `json:"lastname"`

	// Bio is an optional free-form text field.
	Bio sql.NullString `json:"bio"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// ProfileUpdate carries the three mutable profile fields for a full
// overwrite of the owning user's record. An invalid NullString clears
// the corresponding column.
type ProfileUpdate struct {
	Firstname sql.NullString
	Lastname  sql.NullString
	Bio       sql.NullString
}
