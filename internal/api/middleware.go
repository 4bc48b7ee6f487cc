package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"seo-insight/internal/logger"
)

const requestIDKey = "requestId"

// RequestIDMiddleware tags every request with an id, reusing the caller's
// X-Request-ID when present, and echoes it back as a response header.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// RequestLogMiddleware emits one structured line per completed request.
func RequestLogMiddleware() gin.HandlerFunc {
	log := logger.GetLogger().WithField("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(map[string]interface{}{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.GetString(requestIDKey),
		}).Info("Request completed")
	}
}
