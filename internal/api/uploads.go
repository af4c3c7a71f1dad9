package api

import (
	"net/http" // HTTP status codes

	"catalog_system/internal/media" // Signature scheme

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Structured logging
)

// SignatureHandler mints a short-lived signature for client-side direct
// uploads to the media host
func SignatureHandler(cloudName, apiKey, apiSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cloudName == "" || apiKey == "" || apiSecret == "" {
			logrus.Error("Upload signature requested but media credentials are not configured")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate upload signature"})
			return
		}
		c.JSON(http.StatusOK, media.SignUpload(media.ProductFolder, cloudName, apiKey, apiSecret))
	}
}
