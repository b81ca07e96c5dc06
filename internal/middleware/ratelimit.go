package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

var rateLimited = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "eaglehub_rate_limited_total",
		Help: "Requests rejected by the rate limiter, by scope",
	},
	[]string{"scope"},
)

func init() {
	prometheus.MustRegister(rateLimited)
}

// InMemoryRateLimiter is a sliding-window counter per client IP. The hub
// runs as a single process, so no shared store is needed; state is a map
// of recent request times pruned on every call.
type InMemoryRateLimiter struct {
	mu     sync.Mutex
	seen   map[string][]time.Time
	limit  int
	window time.Duration
}

func NewInMemoryRateLimiter(limit int, window time.Duration) *InMemoryRateLimiter {
	l := &InMemoryRateLimiter{
		seen:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
	}
	go l.sweep()
	return l
}

// Allow prunes the key's window in place and admits the request if the
// remaining count is under the limit.
func (l *InMemoryRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	cutoff := now.Add(-l.window)

	times := l.seen[key]
	kept := times[:0]
	for _, ts := range times {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.limit {
		l.seen[key] = kept
		return false
	}
	l.seen[key] = append(kept, now)
	return true
}

// sweep drops keys that went quiet so the map does not grow with every
// IP that ever visited.
func (l *InMemoryRateLimiter) sweep() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		l.mu.Lock()
		cutoff := time.Now().Add(-l.window)
		for key, times := range l.seen {
			idle := true
			for _, ts := range times {
				if ts.After(cutoff) {
					idle = false
					break
				}
			}
			if idle {
				delete(l.seen, key)
			}
		}
		l.mu.Unlock()
	}
}

// RateLimit rejects over-limit clients by IP. Rejections are counted under
// the given scope so /metrics distinguishes, say, spin abuse from chat
// abuse. The public site and the unauthenticated write endpoints carry
// separate limiters with different budgets.
func RateLimit(scope string, limiter *InMemoryRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			rateLimited.WithLabelValues(scope).Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
