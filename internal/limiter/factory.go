package limiter

import (
	"fmt"
	"strings"
	"time"

	"github.com/evyataryagoni/cityweather/internal/logger"
)

// LimiterConfig holds configuration for creating a rate limiter
type LimiterConfig struct {
	Type   string        // "memory" or "redis"
	Limit  int           // requests allowed per window
	Window time.Duration // e.g. 1s, or 5s for one request every five seconds

	// Redis-specific config
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewLimiter creates a rate limiter based on the configuration (factory pattern)
func NewLimiter(cfg LimiterConfig, log *logger.Logger) (Limiter, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "memory", "":
		return NewMemoryLimiter(cfg.Limit, cfg.Window), nil

	case "redis":
		limiter, err := NewRedisLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.Limit, cfg.Window, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis limiter: %w", err)
		}
		return limiter, nil

	default:
		return nil, fmt.Errorf("unknown rate limiter type: %s (supported: 'memory', 'redis')", cfg.Type)
	}
}
