package geolocation

import (
	"context"

	"github.com/evyataryagoni/cityweather/internal/models"
)

// Locator resolves a client IP to a province/city/district address
// An empty ip asks the provider to locate the caller itself
type Locator interface {
	Name() string
	Locate(ctx context.Context, ip string) (*models.Location, error)
}
