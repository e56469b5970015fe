package middleware

import (
	"time"

	"github.com/Sri-Charith/AI-HealthVault/logger"
	"github.com/Sri-Charith/AI-HealthVault/observability"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestLogger tags each request with an id, logs method, path, status and
// duration, and feeds the HTTP metrics.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		observability.ObserveRequest(c.Request.Method, c.FullPath(), status, duration)

		log.WithFields(map[string]interface{}{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"duration":   duration.String(),
		}).Info("request completed")
	}
}
