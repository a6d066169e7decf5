package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/MiniShop-Demo/minishop-demo-backend/models"
	"github.com/gin-gonic/gin"
)

// Fixed-window rate limiter kept entirely in process memory: the whole app
// is single-process, so there is no shared counter to externalize.

type rateWindow struct {
	count   int
	resetAt time.Time
}

var (
	rateMu      sync.Mutex
	rateWindows = make(map[string]*rateWindow)
)

func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		endpoint := c.FullPath()
		method := c.Request.Method

		// Key is per-IP, per-method, per-endpoint
		key := "rl:" + ip + ":" + method + ":" + endpoint
		now := time.Now()

		rateMu.Lock()
		win, ok := rateWindows[key]
		if !ok || now.After(win.resetAt) {
			win = &rateWindow{resetAt: now.Add(window)}
			rateWindows[key] = win
		}
		win.count++
		count := win.count
		resetAt := win.resetAt
		rateMu.Unlock()

		// Calculate remaining requests (clamped at 0)
		remaining := maxRequests - count
		if remaining < 0 {
			remaining = 0
		}

		resetInSeconds := int(time.Until(resetAt).Seconds())
		if resetInSeconds < 0 {
			resetInSeconds = 0
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      remaining,
			ResetAt:        resetAt,
			ResetInSeconds: resetInSeconds,
		}

		// Store in context for controllers
		c.Set("rateLimiter", rate)

		// If limit exceeded → block request
		if count > maxRequests {
			c.JSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
