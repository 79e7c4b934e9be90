package store

import (
	"context"
	"sync"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// MemoryStore keeps device state in process memory
type MemoryStore struct {
	mu        sync.RWMutex
	locations map[string]models.Location
	weather   map[string]models.Weather
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		locations: make(map[string]models.Location),
		weather:   make(map[string]models.Weather),
	}
}

// SaveLocation stores a copy of loc
func (s *MemoryStore) SaveLocation(_ context.Context, deviceID string, loc *models.Location) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locations[deviceID] = *loc
	return nil
}

// LatestLocation returns a copy of the stored location
func (s *MemoryStore) LatestLocation(_ context.Context, deviceID string) (*models.Location, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	loc, ok := s.locations[deviceID]
	if !ok {
		return nil, ErrNotFound
	}
	return &loc, nil
}

// SaveWeather stores a copy of w
func (s *MemoryStore) SaveWeather(_ context.Context, deviceID string, w *models.Weather) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weather[deviceID] = *w
	return nil
}

// LatestWeather returns a copy of the stored weather
func (s *MemoryStore) LatestWeather(_ context.Context, deviceID string) (*models.Weather, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.weather[deviceID]
	if !ok {
		return nil, ErrNotFound
	}
	return &w, nil
}

// Close is a no-op
func (s *MemoryStore) Close() error {
	return nil
}

var _ Store = (*MemoryStore)(nil)
