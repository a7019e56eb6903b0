package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"emplealocal-backend/internal/delivery/http/response"
	"emplealocal-backend/internal/domain"
	"emplealocal-backend/pkg/logger"
)

// SessionMiddleware resolves the current-user slot on every request and,
// when present, exposes the user through the gin context. Requests without
// a session pass through untouched; RequireAuth is the gate.
func SessionMiddleware(sessions domain.SessionRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := sessions.Current(c)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				logger.Log.Error("session lookup failed", "error", err)
			}
			c.Next()
			return
		}

		c.Set(string(domain.KeyUser), user)
		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserRole), user.Type)
		c.Next()
	}
}

// RequireAuth rejects requests that reached a protected route without a
// session user.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(string(domain.KeyUser)); !exists {
			response.Error(c, http.StatusUnauthorized, "User not authenticated", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the session user placed by SessionMiddleware,
// or nil when the request is unauthenticated.
func CurrentUser(c *gin.Context) *domain.User {
	value, exists := c.Get(string(domain.KeyUser))
	if !exists {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}
