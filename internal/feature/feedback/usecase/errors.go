// Package usecase implements the business logic for the feedback feature.
package usecase

import "errors"

var (
	// ErrFeedbackNotFound is returned when no feedback exists with the given ID.
	ErrFeedbackNotFound = errors.New("feedback not found")

	// ErrNotFeedbackOwner is returned when a caller tries to change or delete
	// feedback owned by someone else.
	ErrNotFeedbackOwner = errors.New("not the feedback owner")
)
