// Package router assembles the HTTP route table.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authhandler "feedback_backend/internal/feature/auth/transport/handler"
	feedbackhandler "feedback_backend/internal/feature/feedback/transport/handler"
	platformhandler "feedback_backend/internal/platform/http/handler"
	"feedback_backend/internal/platform/session"
)

func NewRouter(auth *authhandler.AuthHandler, profile *authhandler.ProfileHandler,
	feedback *feedbackhandler.FeedbackHandler, sessions *session.Store) *gin.Engine {
	r := gin.Default()

	// No authentication required
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	// The home page just sends visitors to the login page
	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/login")
	})
	r.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "log in with POST /login"})
	})
	r.GET("/register", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "register with POST /register"})
	})
	r.POST("/register", auth.Register)
	r.POST("/login", auth.Login)

	// Session-gated routes
	gated := r.Group("/")
	gated.Use(session.Required(sessions))
	{
		gated.GET("/secret", auth.Secret)
		gated.GET("/logout", auth.Logout)
		gated.GET("/users/:username", profile.Show)
		gated.POST("/users/:username/delete", auth.DeleteAccount)
		gated.POST("/users/:username/feedback/add", feedback.Add)
		gated.POST("/feedback/:id/update", feedback.Update)
		gated.POST("/feedback/:id/delete", feedback.Delete)
	}

	return r
}
