package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/redis/go-redis/v9"
)

// fixedWindow increments the window counter and sets its expiry on first use
// KEYS[1] = counter key, ARGV[1] = TTL in milliseconds; returns the new count
var fixedWindow = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RedisLimiter shares fixed-window counters across server instances
//
// Key format: ratelimit:{key}:{window index}
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	logger *logger.Logger
}

// NewRedisLimiter connects to Redis and allows limit requests per window per client
func NewRedisLimiter(addr, password string, db int, limit int, window time.Duration, log *logger.Logger) (*RedisLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis for rate limiting: %w", err)
	}

	if limit < 1 {
		limit = 1
	}
	if window < time.Millisecond {
		window = time.Second
	}
	if log == nil {
		log = logger.Nop()
	}

	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		logger: log.WithComponent("RedisLimiter"),
	}, nil
}

// Allow counts the request in the current window
// Redis errors fail open so an outage does not block traffic
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	index := time.Now().UnixMilli() / l.window.Milliseconds()
	counter := fmt.Sprintf("ratelimit:%s:%d", key, index)

	count, err := fixedWindow.Run(ctx, l.client, []string{counter}, 2*l.window.Milliseconds()).Int64()
	if err != nil {
		l.logger.Error().Err(err).Str("key", key).Msg("Rate limit check failed, allowing request")
		return true
	}
	return count <= l.limit
}

// Close closes the Redis connection
func (l *RedisLimiter) Close() error {
	if l.client != nil {
		return l.client.Close()
	}
	return nil
}

var _ Limiter = (*RedisLimiter)(nil)
