package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDHeader carries the acting user's ID. Authentication happens upstream
// of this service (API gateway); the backend trusts the identity it is handed.
const userIDHeader = "X-User-ID"

// IdentityMiddleware reads the acting user from the request header and stores
// it in the context. Requests without an identity are allowed through: read
// endpoints fall back to default display behavior, write endpoints reject in
// the handler.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(userIDHeader)
		if userID != "" {
			c.Set(string(userIDKey), userID)
			ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
