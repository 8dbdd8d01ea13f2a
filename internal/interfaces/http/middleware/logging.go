package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"deskline/internal/shared/logger"
	"deskline/internal/shared/utils/logutil"
)

// maxLoggedQueryLen bounds how much of the raw query ends up in logs.
const maxLoggedQueryLen = 200

func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", logutil.TruncateForLog(c.Request.URL.RawQuery, maxLoggedQueryLen),
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Debugw("HTTP request completed", args...)
		}
	}
}
