package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamps and uptime

	"github.com/gin-gonic/gin" // Gin web framework
)

// Process start time, used for the uptime field
var startedAt = time.Now()

// HealthHandler reports liveness, the current timestamp and process uptime
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",                                  // Always ok if we got here
			"timestamp": time.Now().UTC().Format(time.RFC3339), // Current server time
			"uptime":    time.Since(startedAt).Seconds(),       // Seconds since process start
		})
	}
}
