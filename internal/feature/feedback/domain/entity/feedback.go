// Package entity defines the domain entities for the feedback feature.
package entity

import "time"

// Feedback is a note submitted by a registered user.
// Every row belongs to exactly one user; only that user may change it.
type Feedback struct {
	// ID is the unique identifier for the feedback.
	ID uint `gorm:"primaryKey"`

	// UserID references the owning user.
	UserID uint `gorm:"index;not null"`

	// Title is an optional short heading.
	Title string `gorm:"size:100"`

	// Content is the feedback body.
	Content string `gorm:"type:text;not null"`

	// CreatedAt is the timestamp when the feedback was submitted.
	CreatedAt time.Time
}

// TableName returns the table name for GORM.
func (Feedback) TableName() string {
	return "feedback"
}
