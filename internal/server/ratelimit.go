package server

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// defaultRequestsPerMinute is the per-client request budget. Ranking is
// CPU-bound, so the budget bounds per-client compute rather than bandwidth.
const defaultRequestsPerMinute = 60

// limiter is a per-client token bucket. Buckets refill continuously at the
// configured rate and are dropped after an idle period.
type limiter struct {
	mu      sync.Mutex
	rate    float64 // tokens per second
	burst   float64
	buckets map[string]*bucket
}

type bucket struct {
	tokens   float64
	lastSeen time.Time
}

func newLimiter(requestsPerMinute int) *limiter {
	return &limiter{
		rate:    float64(requestsPerMinute) / 60.0,
		burst:   float64(requestsPerMinute),
		buckets: make(map[string]*bucket),
	}
}

func (l *limiter) allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[client]
	if !ok {
		b = &bucket{tokens: l.burst, lastSeen: now}
		l.buckets[client] = b
		l.evictStale(now)
	}

	b.tokens = min(l.burst, b.tokens+now.Sub(b.lastSeen).Seconds()*l.rate)
	b.lastSeen = now

	if b.tokens < 1.0 {
		return false
	}
	b.tokens--
	return true
}

// evictStale drops buckets idle for over an hour. Called under the lock when
// a new client appears, which keeps the map bounded without a cleanup
// goroutine.
func (l *limiter) evictStale(now time.Time) {
	for client, b := range l.buckets {
		if now.Sub(b.lastSeen) > time.Hour {
			delete(l.buckets, client)
		}
	}
}

// clientID extracts a client identifier from the request, preferring the
// remote IP without the port.
func clientID(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
