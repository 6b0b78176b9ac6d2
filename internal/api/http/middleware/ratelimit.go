package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// BuildRateLimit throttles build creation with a shared token bucket.
// Scaffolding and gradle runs are expensive; polling endpoints are not
// limited.
func BuildRateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many build requests"})
			return
		}
		c.Next()
	}
}
