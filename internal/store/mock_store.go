package store

import (
	"context"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// MockStore is a test double for the Store interface
// It keeps data in memory and lets tests inject errors and inspect calls
type MockStore struct {
	mem *MemoryStore

	// Track method calls for verification in tests
	SaveLocationCalls []string
	SaveWeatherCalls  []string
	CloseCalled       bool

	// Control behavior for error scenarios
	SaveError  error
	LoadError  error
	CloseError error
}

// NewMockStore creates an empty mock store
func NewMockStore() *MockStore {
	return &MockStore{mem: NewMemoryStore()}
}

// SaveLocation implements the Store interface
func (m *MockStore) SaveLocation(ctx context.Context, deviceID string, loc *models.Location) error {
	m.SaveLocationCalls = append(m.SaveLocationCalls, deviceID)
	if m.SaveError != nil {
		return m.SaveError
	}
	return m.mem.SaveLocation(ctx, deviceID, loc)
}

// LatestLocation implements the Store interface
func (m *MockStore) LatestLocation(ctx context.Context, deviceID string) (*models.Location, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	return m.mem.LatestLocation(ctx, deviceID)
}

// SaveWeather implements the Store interface
func (m *MockStore) SaveWeather(ctx context.Context, deviceID string, w *models.Weather) error {
	m.SaveWeatherCalls = append(m.SaveWeatherCalls, deviceID)
	if m.SaveError != nil {
		return m.SaveError
	}
	return m.mem.SaveWeather(ctx, deviceID, w)
}

// LatestWeather implements the Store interface
func (m *MockStore) LatestWeather(ctx context.Context, deviceID string) (*models.Weather, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	return m.mem.LatestWeather(ctx, deviceID)
}

// Close implements the Store interface
func (m *MockStore) Close() error {
	m.CloseCalled = true
	return m.CloseError
}

var _ Store = (*MockStore)(nil)
