package geolocation

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/evyataryagoni/cityweather/internal/address"
	"github.com/evyataryagoni/cityweather/internal/models"
	"github.com/oschwald/geoip2-golang"
)

// GeoIPLocator resolves IPs offline against a GeoLite2/GeoIP2 City database
type GeoIPLocator struct {
	db        *geoip2.Reader
	languages []string
}

// OpenGeoIP opens the database at path
// Names are taken in zh-CN when present, falling back to en
func OpenGeoIP(path string) (*GeoIPLocator, error) {
	db, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open GeoIP database: %w", err)
	}
	return &GeoIPLocator{db: db, languages: []string{"zh-CN", "en"}}, nil
}

// Name returns the provider name
func (g *GeoIPLocator) Name() string {
	return "geoip"
}

// Locate looks ip up in the database
// The caller's own address cannot be inferred offline, so ip is required
func (g *GeoIPLocator) Locate(_ context.Context, ip string) (*models.Location, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("%w: %q is not an IP address", models.ErrInvalidInput, ip)
	}

	rec, err := g.db.City(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: geoip lookup failed: %v", models.ErrUpstream, err)
	}

	var province string
	if len(rec.Subdivisions) > 0 {
		province = pickName(rec.Subdivisions[0].Names, g.languages)
	}
	city := pickName(rec.City.Names, g.languages)

	loc, ok := buildLocation(ip, province, city, g.Name())
	if !ok {
		return nil, fmt.Errorf("geoip: no city data for %s: %w", ip, models.ErrNotFound)
	}
	return loc, nil
}

// Close releases the database
func (g *GeoIPLocator) Close() error {
	if g.db != nil {
		return g.db.Close()
	}
	return nil
}

// pickName returns the first non-empty name in preference order
func pickName(names map[string]string, languages []string) string {
	for _, lang := range languages {
		if n := names[lang]; n != "" {
			return n
		}
	}
	return ""
}

func buildLocation(ip, province, city, provider string) (*models.Location, bool) {
	if province == "" && city == "" {
		return nil, false
	}
	return &models.Location{
		IP:        ip,
		Province:  province,
		City:      city,
		Address:   address.FormatAddress(province, city, ""),
		Provider:  provider,
		UpdatedAt: time.Now().UTC(),
	}, true
}

var _ Locator = (*GeoIPLocator)(nil)
