package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// ArtificialLatency delays every request by a fixed duration so front ends
// developed against this server see realistic loading states. A
// non-positive delay disables it.
func ArtificialLatency(delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-c.Request.Context().Done():
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
