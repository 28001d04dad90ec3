package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "github.com/salesops/sales-portal/internal/errors"
)

// CORS returns a middleware that handles CORS for the allowed SPA origins
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin != "" {
			allowed[origin] = true
		}
	}

	return func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); allowed[origin] {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, PATCH, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// Throttle returns a middleware limiting each client IP to limit requests
// per window. Counters reset when the window rolls over; stale entries for a
// client are replaced on its next request.
func Throttle(limit int, window time.Duration) gin.HandlerFunc {
	type clientWindow struct {
		count int
		reset time.Time
	}

	var mu sync.Mutex
	clients := make(map[string]*clientWindow)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		mu.Lock()
		now := time.Now()
		cw := clients[ip]
		if cw == nil || now.After(cw.reset) {
			cw = &clientWindow{reset: now.Add(window)}
			clients[ip] = cw
		}
		cw.count++
		over := cw.count > limit
		mu.Unlock()

		if over {
			appErr := apperrors.NewRateLimitedError("too many requests")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": gin.H{
					"code":    appErr.Code,
					"message": appErr.Message,
				},
			})
			return
		}

		c.Next()
	}
}

// Recovery returns a middleware that recovers from panics
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
