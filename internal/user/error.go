package user

import "errors"

var (
	ErrEmailExists = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the response never leaks which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrNotFound = errors.New("user not found")
)
