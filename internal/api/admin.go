package api

import (
	"net/http" // HTTP status codes

	"catalog_system/internal/domain"     // Importing domain models
	"catalog_system/internal/utils"      // JWT utility functions
	"catalog_system/internal/validation" // Payload validation

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// adminBody is the admin shape exposed to clients
func adminBody(a domain.Admin) gin.H {
	return gin.H{"id": a.ID, "username": a.Username}
}

// LoginHandler authenticates the admin and returns a 24h bearer token.
// A missing admin and a wrong password are indistinguishable to the caller.
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, ok := bindRawJSON(c)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid JSON body"})
			return
		}
		in, fieldErrs := validation.ValidateLogin(raw)
		if fieldErrs != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": fieldErrs})
			return
		}
		var admin domain.Admin // Fetch admin by username
		if err := db.Where("username = ?", in.Username).First(&admin).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(in.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(admin.ID, admin.Username, jwtSecret)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to generate token")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Login failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"token":   token,
			"admin":   adminBody(admin),
		})
	}
}

// VerifyHandler confirms a token accepted by the JWT middleware and echoes
// the admin it belongs to
func VerifyHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin := c.MustGet("admin").(domain.Admin) // Set by JWTAuthMiddleware
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"admin":   adminBody(admin),
		})
	}
}
