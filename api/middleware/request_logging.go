package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/logger"
)

// RequestLogging logs one structured line per request with its duration.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.InfoWithFields("api_request", logger.Fields{
			"method":      method,
			"path":        path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
			"request_id":  c.GetString(ContextKeyRequestID),
		})
	}
}
