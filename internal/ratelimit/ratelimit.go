package ratelimit

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limiter is a fixed-window request counter. The count is global per
// limiter, not per client: every request within a window shares the
// quota. Window boundaries are aligned to the clock (multiples of the
// window length), so the quota refreshes on the next boundary no matter
// when the first request arrived. Requests over the limit are rejected
// outright, never queued.
type Limiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	windowStart time.Time
	count       int
	now         func() time.Time
}

func NewLimiter(limit int, window time.Duration) *Limiter {
	return &Limiter{limit: limit, window: window, now: time.Now}
}

// Allow consumes one slot from the current window and reports whether the
// request may proceed.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		l.windowStart = now.Truncate(l.window)
		l.count = 0
	}

	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}

// Middleware rejects requests exceeding the limiter's quota with 429.
func Middleware(l *Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
