package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/shopsense/internal/logger"
)

// Logging returns a middleware that logs method, path, status and
// duration for each request.
func Logging(logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		logger.Info("request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"duration_ms", duration.Milliseconds())

		if len(c.Errors) > 0 {
			logger.Error("request failed",
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"errors", c.Errors.String())
		}
	}
}
