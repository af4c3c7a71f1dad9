package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"catalog_system/internal/domain" // Importing domain models
	"catalog_system/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

// JWTAuthMiddleware validates admin bearer tokens and re-checks that the
// referenced admin still exists. A token for a deleted admin is logged
// separately from a bad token, but both come back as 401 to the client.
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Token required"})
			return
		}
		tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")) // Extract the token string
		claims, err := utils.ParseJWT(tokenStr, secret)                          // Parse the JWT token
		if err != nil {
			// Signature invalid, malformed or expired
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid token"})
			return
		}
		var admin domain.Admin // Re-check the admin row still exists
		if err := db.First(&admin, claims.AdminID).Error; err != nil {
			logrus.WithFields(logrus.Fields{
				"admin_id": claims.AdminID,  // Admin ID from the token
				"username": claims.Username, // Username from the token
			}).Warn("Valid token references a missing admin")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Admin not found"})
			return
		}
		c.Set("admin", admin) // Store the admin in context
		c.Next()              // Proceed to the next handler
	}
}
