package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/evyataryagoni/cityweather/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps device state in Redis so several server instances share it
//
// Key format: location:<device_id> and weather:<device_id>
// Value: JSON-encoded models.Location / models.Weather, no expiration
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection
func NewRedisStore(addr, password string, db int) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func locationKey(deviceID string) string { return "location:" + deviceID }
func weatherKey(deviceID string) string  { return "weather:" + deviceID }

// SaveLocation overwrites the device's location
func (s *RedisStore) SaveLocation(ctx context.Context, deviceID string, loc *models.Location) error {
	return s.set(ctx, locationKey(deviceID), loc)
}

// LatestLocation reads the device's location
func (s *RedisStore) LatestLocation(ctx context.Context, deviceID string) (*models.Location, error) {
	var loc models.Location
	if err := s.get(ctx, locationKey(deviceID), &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

// SaveWeather overwrites the device's weather
func (s *RedisStore) SaveWeather(ctx context.Context, deviceID string, w *models.Weather) error {
	return s.set(ctx, weatherKey(deviceID), w)
}

// LatestWeather reads the device's weather
func (s *RedisStore) LatestWeather(ctx context.Context, deviceID string) (*models.Weather, error) {
	var w models.Weather
	if err := s.get(ctx, weatherKey(deviceID), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *RedisStore) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store in Redis: %w", err)
	}
	return nil
}

func (s *RedisStore) get(ctx context.Context, key string, v any) error {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("Redis query failed: %w", err)
	}
	if err := json.Unmarshal(val, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}

var _ Store = (*RedisStore)(nil)
