package models

import "html/template"

// RegisterRequest carries the fields submitted by the registration form.
type RegisterRequest struct {
	// Username is the desired unique account name. Required.
	Username string `json:"username"`

	// Email is the unique contact address. Required.
	Email string `json:"email"`

	// Password is the plaintext password as typed by the user.
	// It is hashed immediately and never stored or logged.
	Password string `json:"password"`
}

// LoginRequest carries the fields submitted by the login form.
type LoginRequest struct {
	// Username identifies the account to authenticate. Exact match.
	Username string `json:"username"`

	// Password is the plaintext candidate password. It is compared
	// against the stored hash and never stored or logged.
	Password string `json:"password"`
}

// FormPage is the view model for the login and register pages.
type FormPage struct {
	// Msg is an optional user-facing message rendered on the form
	// (validation failure, duplicate account, wrong password).
	Msg string
}

// DashboardPage is the view model for the authenticated landing page.
type DashboardPage struct {
	// Username is the session user's name, shown as a greeting.
	Username string
}

// ProfilePage is the view model for the public profile page.
type ProfilePage struct {
	// Msg is set when the requested profile does not exist.
	Msg string

	// Username is the profile owner's account name.
	Username string

	// Firstname is pre-sanitized markup. It is the only field rendered
	// without template escaping, which is why it carries template.HTML
	// and must only ever be populated from the sanitizer's output.
	Firstname template.HTML

	// Lastname is rendered as plain text through template escaping.
	Lastname string

	// Bio is rendered as plain text through template escaping.
	Bio string
}

// EditProfilePage is the view model for the profile edit form.
type EditProfilePage struct {
	// Msg reports the outcome of a submitted edit.
	Msg string

	// Username is the session user's name, shown in the page header.
	Username string

	// Firstname, Lastname and Bio pre-fill the form inputs with the
	// currently stored values.
	Firstname string
	Lastname  string
	Bio       string
}
