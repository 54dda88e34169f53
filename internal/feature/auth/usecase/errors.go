// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by username or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists is returned when the username or email is already taken.
	ErrUserAlreadyExists = errors.New("username or email already taken")

	// ErrInvalidCredentials is returned on login when the username or password
	// is wrong. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrNotAccountOwner is returned when a caller tries to delete an account
	// other than their own.
	ErrNotAccountOwner = errors.New("not the account owner")
)
