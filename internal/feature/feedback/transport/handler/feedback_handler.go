// Package handler provides HTTP handlers for the feedback feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"feedback_backend/internal/feature/feedback/domain/entity"
	"feedback_backend/internal/feature/feedback/transport/http/dto"
	"feedback_backend/internal/feature/feedback/usecase"
	"feedback_backend/internal/platform/session"
	"feedback_backend/internal/platform/validation"
)

// FeedbackUsecase defines the usecase operations for feedback.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type FeedbackUsecase interface {
	Create(ctx context.Context, userID uint, title, content string) (*entity.Feedback, error)
	Update(ctx context.Context, id, callerID uint, title, content string) (*entity.Feedback, error)
	Delete(ctx context.Context, id, callerID uint) error
}

// FeedbackHandler handles HTTP requests for feedback operations.
// All routes sit behind the session gate, so the middleware has already
// put the caller's identity into the request context.
type FeedbackHandler struct {
	uc FeedbackUsecase
}

// NewFeedbackHandler creates a new instance of FeedbackHandler.
func NewFeedbackHandler(uc FeedbackUsecase) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func feedbackRes(f *entity.Feedback) dto.FeedbackRes {
	return dto.FeedbackRes{
		ID:        f.ID,
		UserID:    f.UserID,
		Title:     f.Title,
		Content:   f.Content,
		CreatedAt: f.CreatedAt,
	}
}

// feedbackID parses the :id route parameter. A non-numeric ID behaves like a
// missing row: 404, not 400.
func feedbackID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrFeedbackNotFound.Error()})
		return 0, false
	}
	return uint(id), true
}

// Add handles POST /users/:username/feedback/add.
// Feedback can only be added under the caller's own username and is always
// owned by the session user.
func (h *FeedbackHandler) Add(c *gin.Context) {
	if c.GetString(session.ContextUsername) != c.Param("username") {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	var req dto.FeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("feedback validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Describe(err)})
		return
	}

	f, err := h.uc.Create(c.Request.Context(), c.GetUint(session.ContextUserID), req.Title, req.Content)
	if err != nil {
		slog.Error("feedback create failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create feedback"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"feedback": feedbackRes(f)})
}

// Update handles POST /feedback/:id/update.
// - 404 when the row does not exist
// - 403 when the caller is not the owner
// - 200 with the updated row on success
func (h *FeedbackHandler) Update(c *gin.Context) {
	id, ok := feedbackID(c)
	if !ok {
		return
	}

	var req dto.FeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("feedback validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Describe(err)})
		return
	}

	f, err := h.uc.Update(c.Request.Context(), id, c.GetUint(session.ContextUserID), req.Title, req.Content)
	if err != nil {
		h.writeError(c, err, "update")
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": feedbackRes(f)})
}

// Delete handles POST /feedback/:id/delete.
func (h *FeedbackHandler) Delete(c *gin.Context) {
	id, ok := feedbackID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete(c.Request.Context(), id, c.GetUint(session.ContextUserID)); err != nil {
		h.writeError(c, err, "delete")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "feedback deleted"})
}

func (h *FeedbackHandler) writeError(c *gin.Context, err error, op string) {
	switch {
	case errors.Is(err, usecase.ErrFeedbackNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrFeedbackNotFound.Error()})
	case errors.Is(err, usecase.ErrNotFeedbackOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
	default:
		slog.Error("feedback "+op+" failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + op + " feedback"})
	}
}
