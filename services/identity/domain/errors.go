package domain

import "errors"

// Sentinel errors for the identity domain. Use errors.Is() to check these.
var (
	// ErrUserAlreadyExists indicates a user with the same username already exists.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials indicates a failed login attempt. It deliberately
	// does not distinguish unknown username from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
