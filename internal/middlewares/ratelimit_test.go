package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	l := NewIPRateLimiter(1, 2, time.Minute)
	defer l.Stop()

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	assert.True(t, l.Allow("10.0.0.2"), "other clients have their own bucket")
}

func TestIPRateLimiter_Evicts(t *testing.T) {
	l := NewIPRateLimiter(60, 1, 20*time.Millisecond)
	defer l.Stop()

	l.Allow("10.0.0.1")
	assert.Eventually(t, func() bool {
		l.mu.Lock()
		defer l.mu.Unlock()
		return len(l.limiters) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestRateLimitMiddleware(t *testing.T) {
	l := NewIPRateLimiter(1, 1, time.Minute)
	defer l.Stop()

	handler := RateLimitMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(remote, xff string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/prices", nil)
		req.RemoteAddr = remote
		if xff != "" {
			req.Header.Set("X-Forwarded-For", xff)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusNoContent, send("192.0.2.1:1234", "").Code)

	rr := send("192.0.2.1:5678", "")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.JSONEq(t, `{"error":"Too many requests"}`, rr.Body.String())
	assert.Equal(t, "60", rr.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:1234", "203.0.113.9").Code)
	assert.Equal(t, http.StatusTooManyRequests, send("192.0.2.1:1234", "203.0.113.10").Code)
	assert.Equal(t, http.StatusNoContent, send("192.0.2.2:1234", "").Code)
}

func TestRateLimitMiddleware_BehindRealIP(t *testing.T) {
	l := NewIPRateLimiter(1, 1, time.Minute)
	defer l.Stop()

	handler := chimiddleware.RealIP(RateLimitMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	send := func(xff string) int {
		req := httptest.NewRequest(http.MethodGet, "/prices", nil)
		req.RemoteAddr = "10.0.0.1:4000"
		req.Header.Set("X-Forwarded-For", xff)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusNoContent, send("203.0.113.9"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.9"))
	assert.Equal(t, http.StatusNoContent, send("203.0.113.10"))
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "bad-addr"
	assert.Equal(t, "bad-addr", clientIP(req))
}
