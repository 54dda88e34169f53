package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback_backend/internal/feature/auth/domain/entity"
	"feedback_backend/internal/feature/auth/transport/http/dto"
	"feedback_backend/internal/feature/auth/usecase"
	feedbackentity "feedback_backend/internal/feature/feedback/domain/entity"
	"feedback_backend/internal/platform/session"
)

// UserGetter looks up a user for profile display.
type UserGetter interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// FeedbackLister lists the feedback owned by a user.
type FeedbackLister interface {
	ListForUser(ctx context.Context, userID uint) ([]feedbackentity.Feedback, error)
}

// ProfileHandler serves a user's profile page: the account fields plus the
// feedback the account owns. Profiles are private; only the owner may view
// their own.
type ProfileHandler struct {
	users    UserGetter
	feedback FeedbackLister
}

// NewProfileHandler creates a new instance of ProfileHandler.
func NewProfileHandler(users UserGetter, feedback FeedbackLister) *ProfileHandler {
	return &ProfileHandler{users: users, feedback: feedback}
}

// Show handles GET /users/:username.
func (h *ProfileHandler) Show(c *gin.Context) {
	username := c.Param("username")

	if c.GetString(session.ContextUsername) != username {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	user, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrUserNotFound.Error()})
			return
		}
		slog.Error("profile lookup failed", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	items, err := h.feedback.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		slog.Error("feedback list failed", "error", err, "username", username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	out := make([]dto.FeedbackItem, 0, len(items))
	for _, f := range items {
		out = append(out, dto.FeedbackItem{
			ID:        f.ID,
			Title:     f.Title,
			Content:   f.Content,
			CreatedAt: f.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, dto.ProfileRes{User: userRes(user), Feedback: out})
}
