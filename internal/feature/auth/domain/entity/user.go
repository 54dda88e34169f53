// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// User represents a registered account.
// It contains authentication credentials and profile metadata.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// Username is the login name. It must be unique across all users.
	Username string `gorm:"uniqueIndex;size:100;not null"`

	// Email is the user's email address. It must be unique across all users
	// and is stored lowercased.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// Password is the bcrypt hash of the user's password.
	// This never stores the plaintext.
	Password string `gorm:"size:255;not null"`

	// FirstName and LastName are profile fields shown on the user's page.
	FirstName string `gorm:"size:100;not null"`
	LastName  string `gorm:"size:100;not null"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
