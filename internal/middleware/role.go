package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireRole allows the request through only when the authenticated
// user's role is one of allowedRoles. Must run after AuthMiddleware,
// which attaches userRole to the context.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role missing"})
			return
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}
