package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger emits one structured log line per request.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		durationMs := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", c.Writer.Status()),
			slog.Float64("duration_ms", durationMs),
		}
		if id, exists := c.Get("userID"); exists {
			attrs = append(attrs, slog.Uint64("user_id", uint64(id.(uint))))
		}
		logger.Info("request", attrs...)
	}
}
