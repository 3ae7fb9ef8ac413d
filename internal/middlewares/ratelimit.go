package middlewares

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter *rate.Limiter
	last    time.Time
}

// IPRateLimiter keeps one token bucket per client IP and evicts idle ones.
type IPRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	ttl      time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewIPRateLimiter allows rpm requests per minute per IP with the given burst.
func NewIPRateLimiter(rpm, burst int, ttl time.Duration) *IPRateLimiter {
	if rpm <= 0 {
		rpm = 1
	}
	if burst <= 0 {
		burst = 1
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	l := &IPRateLimiter{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Every(time.Minute / time.Duration(rpm)),
		burst:    burst,
		ttl:      ttl,
		stopCh:   make(chan struct{}),
	}
	go l.reaper()
	return l
}

func (l *IPRateLimiter) reaper() {
	t := time.NewTicker(l.ttl)
	defer t.Stop()
	for {
		select {
		case <-l.stopCh:
			return
		case now := <-t.C:
			l.mu.Lock()
			for ip, e := range l.limiters {
				if now.Sub(e.last) > l.ttl {
					delete(l.limiters, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Stop ends the eviction goroutine.
func (l *IPRateLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// Allow reports whether a request from ip may proceed.
func (l *IPRateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	e, ok := l.limiters[ip]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = e
	}
	e.last = time.Now()
	l.mu.Unlock()

	return e.limiter.Allow()
}

// RateLimitMiddleware rejects requests over the per-IP budget with 429.
func RateLimitMiddleware(l *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !l.Allow(ip) {
				logger.Log.Warnw("rate limit exceeded", "ip", ip, "uri", r.RequestURI)
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Too many requests"})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP keys buckets by the connection address. Forwarding headers are honoured only when
// chimiddleware.RealIP runs earlier in the chain and rewrites RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
