package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Sarah-okolo/Hireflow-server/internal/httputil"
)

// LoginLimiter throttles credential-guessing with a fixed window per client
// address. State is in-process; a multi-instance deployment would need a
// shared store behind the same interface.
type LoginLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	buckets map[string]*bucket
	limit   int
	window  time.Duration
	maxKeys int
}

type bucket struct {
	count     int
	windowEnd time.Time
}

// NewLoginLimiter allows limit attempts per key within each window.
func NewLoginLimiter(limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		now:     time.Now,
		buckets: make(map[string]*bucket),
		limit:   limit,
		window:  window,
		maxKeys: 10000,
	}
}

// Allow records an attempt for key and reports whether it is within limit.
func (l *LoginLimiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if ok && now.After(b.windowEnd) {
		delete(l.buckets, key)
		ok = false
	}
	if !ok {
		if len(l.buckets) >= l.maxKeys {
			l.gc(now)
		}
		b = &bucket{windowEnd: now.Add(l.window)}
		l.buckets[key] = b
	}

	if b.count >= l.limit {
		return false
	}
	b.count++
	return true
}

func (l *LoginLimiter) gc(now time.Time) {
	for key, b := range l.buckets {
		if now.After(b.windowEnd) {
			delete(l.buckets, key)
		}
	}
}

// Limit wraps a handler with the limiter, keyed by client IP.
func (l *LoginLimiter) Limit(logger *slog.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !l.Allow(key) {
			logger.Warn("login rate limit exceeded", "client", key)
			httputil.RespondError(w, http.StatusTooManyRequests, "too many login attempts, try again later")
			return
		}
		next(w, r)
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
