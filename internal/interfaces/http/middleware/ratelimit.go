package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed window in-memory rate limiter keyed by client
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	limit   int           // Maximum requests per window
	window  time.Duration // Time window
	now     func() time.Time
}

type client struct {
	tokens    int
	lastReset time.Time
}

// NewRateLimiter creates a new rate limiter. Expired clients are swept
// until ctx is cancelled.
func NewRateLimiter(ctx context.Context, limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*client),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
	go rl.cleanup(ctx, window*2)
	return rl
}

func (rl *RateLimiter) cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := rl.now()
			for key, c := range rl.clients {
				if now.Sub(c.lastReset) > rl.window*2 {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Allow checks if a request from the given key should be allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	c, exists := rl.clients[key]
	if !exists {
		rl.clients[key] = &client{tokens: rl.limit - 1, lastReset: now}
		return true
	}
	if now.Sub(c.lastReset) >= rl.window {
		c.tokens = rl.limit - 1
		c.lastReset = now
		return true
	}
	if c.tokens > 0 {
		c.tokens--
		return true
	}
	return false
}

// Remaining returns the number of remaining requests for the given key
func (rl *RateLimiter) Remaining(key string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	c, exists := rl.clients[key]
	if !exists || rl.now().Sub(c.lastReset) >= rl.window {
		return rl.limit
	}
	return c.tokens
}

// RateLimit limits requests per client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return RateLimitByKey(limiter, func(c *gin.Context) string { return c.ClientIP() })
}

// RateLimitByKey returns a rate limiting middleware with custom key extractor
func RateLimitByKey(limiter *RateLimiter, keyFunc func(*gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := keyFunc(c)

		if !limiter.Allow(key) {
			c.Header("Retry-After", strconv.Itoa(int(limiter.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error": gin.H{
					"code":       "RATE_LIMITED",
					"message":    "Too many requests. Please try again later.",
					"request_id": c.GetString(RequestIDKey),
				},
			})
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
