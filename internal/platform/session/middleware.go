package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by Required for downstream handlers.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// Required returns a Gin middleware that resolves the session cookie and
// restricts access to authenticated users only. Anonymous requests are sent
// to the login page rather than answered with a bare 401, matching how the
// rest of the application navigates.
func Required(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(CookieName)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		data, err := store.Get(c.Request.Context(), token)
		if err != nil {
			// Stale cookie: expire it so the browser stops sending it.
			c.SetCookie(CookieName, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(ContextUserID, data.UserID)
		c.Set(ContextUsername, data.Username)

		c.Next()
	}
}
