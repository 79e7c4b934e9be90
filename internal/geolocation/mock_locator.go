package geolocation

import (
	"context"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// MockLocator is a test double for the Locator interface
type MockLocator struct {
	// Locations maps IP to the location returned for it
	// The "" entry answers for any IP not listed
	Locations map[string]*models.Location

	// Track calls for verification in tests
	LocateCalls []string

	// Control error scenarios
	LocateError error
}

// NewMockLocator creates a mock that places every caller in Shenzhen Nanshan
func NewMockLocator() *MockLocator {
	return &MockLocator{
		Locations: map[string]*models.Location{
			"": {
				Province: "广东省",
				City:     "深圳市",
				District: "南山区",
				Address:  "广东省 深圳市 南山区",
				Provider: "mock",
			},
		},
	}
}

// Name implements Locator
func (m *MockLocator) Name() string {
	return "mock"
}

// Locate implements Locator
func (m *MockLocator) Locate(_ context.Context, ip string) (*models.Location, error) {
	m.LocateCalls = append(m.LocateCalls, ip)

	if m.LocateError != nil {
		return nil, m.LocateError
	}

	loc, ok := m.Locations[ip]
	if !ok {
		loc, ok = m.Locations[""]
	}
	if !ok {
		return nil, models.ErrNotFound
	}

	cp := *loc
	cp.IP = ip
	return &cp, nil
}
