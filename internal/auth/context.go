package auth

import "github.com/gin-gonic/gin"

// GetUserID returns the authenticated user's id or 0 when unauthenticated.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// SetUserID stores the authenticated user's id in the context.
// Exposed for handler tests that bypass the middleware.
func SetUserID(c *gin.Context, id int64) {
	c.Set(userIDKey, id)
}
