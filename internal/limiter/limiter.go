package limiter

import "context"

// Limiter decides whether a client may make another request
// Implementations are safe for concurrent use
type Limiter interface {
	// Allow reports whether a request from key (usually the client IP) may proceed
	Allow(ctx context.Context, key string) bool

	// Close cleans up any resources (Redis connections, etc.)
	Close() error
}
