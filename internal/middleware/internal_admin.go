package middleware

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin" // Gin web framework
)

// InternalAdminMiddleware adds a second, defense-in-depth check on the most
// sensitive routes: the "x-internal-admin" header must equal the configured
// secret. Deployments without a secret get a pass-through.
func InternalAdminMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// No secret configured for this deployment, check disabled
		if secret == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("x-internal-admin") // Get internal admin header
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Internal access required"})
			return
		}
		if provided != secret {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden: Invalid internal credentials"})
			return
		}
		c.Next() // Secret accepted, proceed to the next handler
	}
}
