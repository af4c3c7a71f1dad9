package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// APIKeyMiddleware gates mutation routes behind a shared API key.
// The credential is read from "Authorization: Bearer <key>" first and
// falls back to the "x-api-key" header; Bearer wins when both are present.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var provided string
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if strings.HasPrefix(authHeader, "Bearer ") {
			provided = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")) // Bearer credential
		} else if k := c.GetHeader("x-api-key"); k != "" {
			provided = k // Fallback header credential
		}
		// No credential at all
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: API key is required"})
			return
		}
		// Exact string match against the configured key
		if provided != apiKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API key"})
			return
		}
		c.Next() // Credential accepted, proceed to the next handler
	}
}
