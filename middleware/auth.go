package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserIDKey is the context key under which the authenticated user id is stored.
const UserIDKey = "userID"

// UserAuthMiddleware resolves the caller's identity from the "uid" cookie or
// the X-User-Id header. This is the prototype's auth stub: no credentials are
// verified, only an identity is required. A session-backed implementation
// slots in here without touching any handler.
func UserAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie("uid")
		if err != nil || id == "" {
			id = c.GetHeader("X-User-Id")
		}
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"code":    "unauthenticated",
				"message": "no user identity; sign in via /api/dev/login or send X-User-Id",
			})
			return
		}
		c.Set(UserIDKey, id)
		c.Next()
	}
}

// UserID returns the authenticated user id set by UserAuthMiddleware.
func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
