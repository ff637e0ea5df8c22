package middleware

import (
	"net/http" // HTTP status codes

	"parking_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequireRoles authorizes a request against a static allowed-role set.
// It decides from the verified token claims: roles are immutable after
// signup, so no store round trip is needed. Must run after
// JWTAuthMiddleware.
func RequireRoles(allowed ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c) // Get verified claims from context
		// Check if claims exist in context
		if !ok {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		// Check if the claimed role is in the allowed set
		for _, role := range allowed {
			if claims.Role == role {
				c.Next() // Authorized, proceed to the next handler
				return
			}
		}
		// Authenticated but wrong role, abort with forbidden status
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Access denied: insufficient permissions"})
	}
}
