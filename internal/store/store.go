package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// ErrNotFound is returned when nothing has been stored for a device
var ErrNotFound = models.ErrNotFound

// Store keeps the latest location and weather per device
// Writes are last-write-wins; every implementation is safe for concurrent use
type Store interface {
	SaveLocation(ctx context.Context, deviceID string, loc *models.Location) error
	LatestLocation(ctx context.Context, deviceID string) (*models.Location, error)

	SaveWeather(ctx context.Context, deviceID string, w *models.Weather) error
	LatestWeather(ctx context.Context, deviceID string) (*models.Weather, error)

	// Close cleans up resources (database connections, etc.)
	Close() error
}

// Config selects and configures a Store implementation
type Config struct {
	Type          string // "memory", "redis" or "mysql"
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// NewStore creates a store based on the configuration (factory pattern)
func NewStore(cfg Config) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Type)) {
	case "memory", "":
		return NewMemoryStore(), nil

	case "redis":
		s, err := NewRedisStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		return s, nil

	case "mysql":
		s, err := NewMySQLStore(cfg.MySQLDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create MySQL store: %w", err)
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unknown state store type: %s (supported: 'memory', 'redis', 'mysql')", cfg.Type)
	}
}
