package services

import "errors"

// Sentinel errors surfaced by the user service. Match with errors.Is.
var (
	// ErrEmailInUse: the email belongs to a stored record whose name
	// differs from the one submitted.
	ErrEmailInUse = errors.New("email already in use")

	// ErrWrongPassword: the record exists but the password does not match.
	ErrWrongPassword = errors.New("incorrect password")

	// ErrNotFound: no record matches the given email.
	ErrNotFound = errors.New("user not found")

	// ErrNoActiveUser: no session, or the session points at a deleted record.
	ErrNoActiveUser = errors.New("no active user")
)
