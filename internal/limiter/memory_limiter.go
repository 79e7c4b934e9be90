package limiter

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTimeout is how long a client's limiter is kept after its last request
const idleTimeout = 5 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter keeps one token bucket per client in process memory
// Suitable for single-server deployments
type MemoryLimiter struct {
	mu          sync.Mutex
	clients     map[string]*visitor
	every       rate.Limit
	burst       int
	lastCleanup time.Time
}

// NewMemoryLimiter allows limit requests per window for each client,
// refilling continuously and bursting up to limit
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	if limit < 1 {
		limit = 1
	}
	if window <= 0 {
		window = time.Second
	}
	return &MemoryLimiter{
		clients:     make(map[string]*visitor),
		every:       rate.Every(window / time.Duration(limit)),
		burst:       limit,
		lastCleanup: time.Now(),
	}
}

// Allow consumes one token from key's bucket
func (l *MemoryLimiter) Allow(_ context.Context, key string) bool {
	now := time.Now()

	l.mu.Lock()
	c, ok := l.clients[key]
	if !ok {
		c = &visitor{limiter: rate.NewLimiter(l.every, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now
	l.cleanup(now)
	l.mu.Unlock()

	return c.limiter.AllowN(now, 1)
}

// cleanup drops idle clients at most once per idleTimeout
// Must be called with mu held
func (l *MemoryLimiter) cleanup(now time.Time) {
	if now.Sub(l.lastCleanup) < idleTimeout {
		return
	}
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) > idleTimeout {
			delete(l.clients, key)
		}
	}
	l.lastCleanup = now
}

// Close is a no-op for the in-memory limiter
func (l *MemoryLimiter) Close() error {
	return nil
}

var _ Limiter = (*MemoryLimiter)(nil)
