package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestLimiter(limit int, window time.Duration) (*Limiter, *time.Time) {
	l := NewLimiter(limit, window)
	current := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }
	return l, &current
}

func TestAllowWithinLimit(t *testing.T) {
	l, _ := newTestLimiter(3, 10*time.Second)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(), "request %d should pass", i+1)
	}
}

func TestFourthRequestRejected(t *testing.T) {
	l, _ := newTestLimiter(3, 10*time.Second)

	for i := 0; i < 3; i++ {
		l.Allow()
	}
	assert.False(t, l.Allow())
}

func TestWindowReset(t *testing.T) {
	l, current := newTestLimiter(3, 10*time.Second)

	for i := 0; i < 4; i++ {
		l.Allow()
	}

	*current = current.Add(10 * time.Second)
	assert.True(t, l.Allow(), "new window should have a fresh quota")
}

func TestRejectionDoesNotConsumeNextWindow(t *testing.T) {
	l, current := newTestLimiter(1, 10*time.Second)

	assert.True(t, l.Allow())
	for i := 0; i < 5; i++ {
		assert.False(t, l.Allow())
	}

	*current = current.Add(11 * time.Second)
	assert.True(t, l.Allow())
}

// A first request landing mid-window does not shift the boundary: the
// quota refreshes at the next clock-aligned tick, not one full window
// after the request.
func TestWindowBoundariesAreClockAligned(t *testing.T) {
	l, current := newTestLimiter(1, 10*time.Second)

	*current = current.Add(3 * time.Second)
	assert.True(t, l.Allow())
	assert.False(t, l.Allow())

	// Only 7 seconds later, but past the 10-second boundary.
	*current = current.Add(7 * time.Second)
	assert.True(t, l.Allow())
}

func TestMiddlewareReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)

	l, _ := newTestLimiter(3, 10*time.Second)
	r := gin.New()
	r.GET("/limited", Middleware(l), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too many requests")
}
