package weather

import (
	"context"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// MockSource is a test double for the Source interface
type MockSource struct {
	// Weather is returned for every call, with Coordinates filled in
	Weather models.Weather

	// Track calls for verification in tests
	CurrentCalls []models.Coordinates

	// Control error scenarios
	CurrentError error
}

// NewMockSource creates a mock reporting 26°C and cloudy
func NewMockSource() *MockSource {
	return &MockSource{
		Weather: models.Weather{
			City:        "深圳",
			Temperature: "26°C",
			Text:        "多云",
			Valid:       true,
		},
	}
}

// Name implements Source
func (m *MockSource) Name() string {
	return "mock"
}

// Current implements Source
func (m *MockSource) Current(_ context.Context, coords models.Coordinates) (*models.Weather, error) {
	m.CurrentCalls = append(m.CurrentCalls, coords)

	if m.CurrentError != nil {
		return nil, m.CurrentError
	}

	w := m.Weather
	w.Coordinates = coords
	return &w, nil
}
