package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goodreads/internal/adapter/session"
)

// UserIDKey is the gin context key holding the authenticated user ID.
const UserIDKey = "user_id"

// LoginPath is the route unauthenticated users are redirected to.
const LoginPath = "/users/login/"

// Session resolves the session cookie on every request and, when valid,
// stores the user ID in the request context. It never rejects a request.
func Session(store session.Store, cookieName string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		userID, err := store.Get(c.Request.Context(), token)
		if err != nil {
			// Treat a session-store failure as an anonymous request
			log.Warn("session lookup failed", zap.Error(err))
			c.Next()
			return
		}
		if userID > 0 {
			c.Set(UserIDKey, userID)
		}

		c.Next()
	}
}

// LoginRequired redirects anonymous requests to the login page with a
// next parameter pointing back to the requested URL.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUserID(c) > 0 {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, LoginPath+"?next="+c.Request.URL.Path)
		c.Abort()
	}
}

// CurrentUserID returns the authenticated user ID, or 0 for anonymous
// requests.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(UserIDKey)
}
