package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(store *Store) *gin.Engine {
		r := gin.New()
		gated := r.Group("/")
		gated.Use(Required(store))
		gated.GET("/secret", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id":  c.GetUint(ContextUserID),
				"username": c.GetString(ContextUsername),
			})
		})
		return r
	}

	t.Run("no cookie redirects to login", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewStore(client, "session", DefaultTTL)
		router := newRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
	})

	t.Run("unknown token redirects and expires the cookie", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewStore(client, "session", DefaultTTL)
		router := newRouter(store)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale-token"})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))

		// The stale cookie gets replaced with an already-expired one
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.Empty(t, cookies[0].Value)
		assert.Negative(t, cookies[0].MaxAge)
	})

	t.Run("valid session reaches the handler with identity set", func(t *testing.T) {
		client, _ := setupTestRedis(t)
		store := NewStore(client, "session", DefaultTTL)
		router := newRouter(store)

		token, err := store.Create(context.Background(), 21, "sierra")
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/secret", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"user_id":21,"username":"sierra"}`, w.Body.String())
	})
}
