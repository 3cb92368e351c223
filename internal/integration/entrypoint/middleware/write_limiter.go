// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/goals/internal/application/adapter"
	domainerror "github.com/finance-tracker/goals/internal/domain/error"
	"github.com/finance-tracker/goals/internal/integration/entrypoint/dto"
)

// writeWindow tracks the writes of one client inside the current window.
type writeWindow struct {
	writes    int
	resetTime time.Time
}

// WriteLimiter caps goal mutations per client IP. Every mutation rewrites the
// whole stored collection.
type WriteLimiter struct {
	mu        sync.Mutex
	clock     adapter.Clock
	windows   map[string]*writeWindow
	maxWrites int
	window    time.Duration
}

// NewWriteLimiter creates a limiter allowing maxWrites per window.
// A non-positive maxWrites disables limiting.
func NewWriteLimiter(clock adapter.Clock, maxWrites int, window time.Duration) *WriteLimiter {
	return &WriteLimiter{
		clock:     clock,
		windows:   make(map[string]*writeWindow),
		maxWrites: maxWrites,
		window:    window,
	}
}

// Middleware returns a Gin handler rejecting writes over the limit with 429.
func (l *WriteLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.maxWrites <= 0 {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !l.allow(clientIP) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many goal changes. Please try again later.",
				Code:  string(domainerror.ErrCodeTooManyWrites),
			})
			return
		}

		c.Next()
	}
}

func (l *WriteLimiter) allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()

	w, exists := l.windows[key]
	if !exists || now.After(w.resetTime) {
		l.windows[key] = &writeWindow{
			writes:    1,
			resetTime: now.Add(l.window),
		}
		l.evictExpired(now)
		return true
	}

	if w.writes < l.maxWrites {
		w.writes++
		return true
	}
	return false
}

// evictExpired must be called with mu held.
func (l *WriteLimiter) evictExpired(now time.Time) {
	for key, w := range l.windows {
		if now.After(w.resetTime) {
			delete(l.windows, key)
		}
	}
}
