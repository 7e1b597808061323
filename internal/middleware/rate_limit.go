package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"integrated-bots/pkg/response"
)

// RateLimit applies a process-wide token bucket to the chat surface.
// A zero per-minute limit disables it.
func (m Middleware) RateLimit() gin.HandlerFunc {
	if m.rateLimitPerMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(float64(m.rateLimitPerMin)/60.0), m.rateLimitPerMin)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
