package service

import "errors"

var (
	// ErrInvalidDataProvided is returned when a required form field is
	// missing or empty.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrWrongPassword is returned when the candidate password does not
	// match the stored hash. This is a normal negative result of login.
	ErrWrongPassword = errors.New("wrong password")
)
