// Package handler provides HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"feedback_backend/internal/feature/auth/domain/entity"
	"feedback_backend/internal/feature/auth/transport/http/dto"
	"feedback_backend/internal/feature/auth/usecase"
	"feedback_backend/internal/platform/session"
	"feedback_backend/internal/platform/validation"
)

// AuthUsecase defines the usecase operations for authentication.
// Following Go convention: interfaces are defined by the consumer (handler),
// not the provider (usecase).
type AuthUsecase interface {
	// Register creates a new user from the validated input.
	Register(ctx context.Context, in usecase.RegisterInput) (*entity.User, error)
	// Login authenticates a user and returns the account on success.
	Login(ctx context.Context, username, password string) (*entity.User, error)
	// DeleteAccount removes the named account after re-verifying ownership.
	DeleteAccount(ctx context.Context, username string, callerID uint) error
}

// SessionStore is the slice of the session store the auth handlers need.
type SessionStore interface {
	Create(ctx context.Context, userID uint, username string) (string, error)
	Delete(ctx context.Context, token string) error
	TTL() time.Duration
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth     AuthUsecase
	sessions SessionStore
}

// NewAuthHandler creates a new instance of AuthHandler.
// Constructor for dependency injection.
func NewAuthHandler(auth AuthUsecase, sessions SessionStore) *AuthHandler {
	return &AuthHandler{auth: auth, sessions: sessions}
}

func userRes(u *entity.User) dto.UserRes {
	return dto.UserRes{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Register handles the user registration endpoint.
// - binds the request JSON to RegisterReq
// - returns 400 with field-level errors on validation failure
// - returns 409 when the username or email is taken
// - returns 201 with the created user on success
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Describe(err)})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), usecase.RegisterInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			slog.Warn("register rejected", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, gin.H{"error": usecase.ErrUserAlreadyExists.Error()})
			return
		}
		slog.Error("register failed", "error", err, "username", req.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	slog.Info("user registered", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, gin.H{"user": userRes(user)})
}

// Login handles the user login endpoint.
// On success a server-side session is created and its token is handed to the
// browser in an HttpOnly cookie. Failed logins get a single generic error:
// unknown username and wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"errors": validation.Describe(err)})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("login failed", "username", req.Username, "remote_addr", c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user.ID, user.Username)
	if err != nil {
		slog.Error("session create failed", "error", err, "username", user.Username)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", false, true)

	slog.Info("user login successful", "username", user.Username, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, gin.H{"user": userRes(user)})
}

// Logout deletes the caller's session, expires the cookie, and sends the
// browser back to the home page.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			slog.Error("session delete failed", "error", err)
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	c.Redirect(http.StatusFound, "/")
}

// Secret serves the session-gated placeholder page.
func (h *AuthHandler) Secret(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "you made it!"})
}

// DeleteAccount handles POST /users/:username/delete.
// The session identity must match the target username; the usecase
// re-verifies against the stored record before deleting the account and all
// feedback it owns. The session itself is destroyed afterwards.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	username := c.Param("username")
	caller := c.GetString(session.ContextUsername)
	callerID := c.GetUint(session.ContextUserID)

	if caller != username {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		return
	}

	if err := h.auth.DeleteAccount(c.Request.Context(), username, callerID); err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": usecase.ErrUserNotFound.Error()})
		case errors.Is(err, usecase.ErrNotAccountOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not authorized"})
		default:
			slog.Error("account delete failed", "error", err, "username", username)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "account deletion failed"})
		}
		return
	}

	if token, err := c.Cookie(session.CookieName); err == nil {
		if err := h.sessions.Delete(c.Request.Context(), token); err != nil {
			slog.Error("session delete failed", "error", err)
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)

	slog.Info("account deleted", "username", username)
	c.JSON(http.StatusOK, gin.H{"message": "account deleted"})
}
