package dto

import "time"

// UserRes represents a user in API responses.
// It contains only the public-facing fields; the password hash never leaves
// the server.
type UserRes struct {
	ID        uint   `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FeedbackItem represents one feedback entry on a profile page.
type FeedbackItem struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileRes represents the response body for GET /users/:username.
type ProfileRes struct {
	User     UserRes        `json:"user"`
	Feedback []FeedbackItem `json:"feedback"`
}
