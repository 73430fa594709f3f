package auth

import (
	"errors"
)

var (
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrAccountInactive is returned when the account exists but is disabled.
	ErrAccountInactive = errors.New("account is inactive")
	// ErrInvalidToken is returned when a bearer token cannot be verified.
	ErrInvalidToken = errors.New("invalid token")
	// ErrForbidden is returned when the caller lacks the required role or ownership.
	ErrForbidden = errors.New("forbidden")
	// ErrPublishedLocked is returned when an author tries to edit a published version.
	ErrPublishedLocked = errors.New("published versions cannot be edited; create a new version")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)
