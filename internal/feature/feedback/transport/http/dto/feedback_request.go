// Package dto defines data transfer objects for the feedback feature's HTTP transport layer.
package dto

import "time"

// FeedbackReq represents the request body for creating or updating feedback.
// The title is optional; the content is required.
type FeedbackReq struct {
	Title   string `json:"title" binding:"omitempty,max=100"`
	Content string `json:"content" binding:"required"`
}

// FeedbackRes represents a feedback row in API responses.
type FeedbackRes struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Title     string    `json:"title,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
