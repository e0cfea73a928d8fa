package models

import "time"

// Session is the server-side record binding an opaque client token to an
// authenticated identity. The token is the only value that ever leaves the
// process; everything else stays in the session store.
type Session struct {
	// Token is the opaque identifier stored in the client cookie.
	Token string

	// UserID is the authenticated account's internal identifier.
	UserID int64

	// Username is kept alongside UserID so that pages greeting the user
	// do not need a database round trip.
	Username string

	// IssuedAt is when the session was established.
	IssuedAt time.Time

	// ExpiresAt is when the session stops resolving. There is no logout
	// route; expiry is the sole termination mechanism.
	ExpiresAt time.Time
}
