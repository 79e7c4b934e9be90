package service

import (
	"fmt"
	"strings"

	"github.com/evyataryagoni/cityweather/internal/address"
	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/evyataryagoni/cityweather/internal/metrics"
	"github.com/evyataryagoni/cityweather/internal/models"
	"github.com/evyataryagoni/cityweather/internal/resolver"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
)

// maxQueryLen bounds queries and addresses, in characters
const maxQueryLen = 256

// CityService handles city lookups and address normalization
// It sits between handlers and the resolver/normalizer
//
// Responsibilities:
//   - Validate and NFC-normalize input
//   - Call the resolver
//   - Translate "not found" into ErrCityNotFound
//   - Record metrics
type CityService struct {
	resolver   *resolver.Resolver
	normalizer *address.Normalizer
	validator  *validator.Validate
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewCityService creates a city service
// A nil resolver uses the compiled-in directory, a nil normalizer uses DefaultKey
func NewCityService(r *resolver.Resolver, n *address.Normalizer, m *metrics.Metrics, log *logger.Logger) *CityService {
	if r == nil {
		r = resolver.NewDefault()
	}
	if n == nil {
		n = address.NewNormalizer("")
	}
	if log == nil {
		log = logger.NewDefault()
	}
	return &CityService{
		resolver:   r,
		normalizer: n,
		validator:  validator.New(),
		metrics:    m,
		logger:     log.WithComponent("CityService"),
	}
}

// ByName finds the first city whose short name matches query
func (s *CityService) ByName(query string) (*models.CityMatch, error) {
	return s.lookup("name", query, s.resolver.FindByName)
}

// ByAdmin finds the first city whose administrative label matches query
func (s *CityService) ByAdmin(query string) (*models.CityMatch, error) {
	return s.lookup("admin", query, s.resolver.FindByAdmin)
}

func (s *CityService) lookup(field, query string, find func(string) (models.Coordinates, bool)) (*models.CityMatch, error) {
	q, err := s.cleanQuery(query)
	if err != nil {
		s.countLookup(field, "invalid")
		return nil, err
	}

	s.logger.Debug().Str("field", field).Str("query", q).Msg("Looking up city")
	coords, ok := find(q)
	if !ok {
		s.countLookup(field, "not_found")
		return nil, fmt.Errorf("%w: %s", models.ErrCityNotFound, q)
	}

	s.countLookup(field, "success")
	return &models.CityMatch{Query: q, Coordinates: coords}, nil
}

// Nearest finds the directory city closest to lat/lon
func (s *CityService) Nearest(lat, lon float64) (*models.NearestCity, error) {
	if err := s.validator.Var(lat, "latitude"); err != nil {
		return nil, fmt.Errorf("%w: latitude must be within [-90, 90]", models.ErrInvalidInput)
	}
	if err := s.validator.Var(lon, "longitude"); err != nil {
		return nil, fmt.Errorf("%w: longitude must be within [-180, 180]", models.ErrInvalidInput)
	}

	rec, km, ok := s.resolver.Nearest(lat, lon)
	if !ok {
		s.countLookup("nearest", "not_found")
		return nil, fmt.Errorf("%w: directory is empty", models.ErrCityNotFound)
	}

	s.countLookup("nearest", "success")
	return &models.NearestCity{City: rec, DistanceKm: km}, nil
}

// Normalize turns a localized address into a directory key
// Parsed is false when the configured default key was substituted
func (s *CityService) Normalize(addr string) (*models.NormalizedAddress, error) {
	addr = norm.NFC.String(addr)
	if err := s.validator.Var(addr, fmt.Sprintf("max=%d", maxQueryLen)); err != nil {
		return nil, fmt.Errorf("%w: address longer than %d characters", models.ErrInvalidInput, maxQueryLen)
	}

	_, parsed := address.Parse(addr)
	key := s.normalizer.Normalize(addr)

	if parsed {
		s.countNormalize("parsed")
	} else {
		s.countNormalize("default")
		s.logger.Warn().Str("address", addr).Str("key", key).Msg("Address not parsable, using default key")
	}

	return &models.NormalizedAddress{Address: addr, Key: key, Parsed: parsed}, nil
}

// ResolveAddress normalizes addr and looks the key up by admin label,
// falling back to a short-name match
//
// Addresses without all three markers, such as "浙江 杭州市" from an offline
// database, are matched part by part before the default key is used
func (s *CityService) ResolveAddress(addr string) (*models.CityMatch, error) {
	n, err := s.Normalize(addr)
	if err != nil {
		return nil, err
	}

	if !n.Parsed {
		if match, ok := s.matchParts(n.Address); ok {
			s.countLookup("address", "success")
			return match, nil
		}
	}

	if coords, ok := s.resolver.FindByAdmin(n.Key); ok {
		s.countLookup("address", "success")
		return &models.CityMatch{Query: n.Key, Coordinates: coords}, nil
	}
	if coords, ok := s.resolver.FindByName(n.Key); ok {
		s.countLookup("address", "success")
		return &models.CityMatch{Query: n.Key, Coordinates: coords}, nil
	}

	s.countLookup("address", "not_found")
	s.logger.Warn().Str("key", n.Key).Msg("No city for address key")
	return nil, fmt.Errorf("%w: %s", models.ErrCityNotFound, n.Key)
}

// matchParts tries the space-separated parts of addr, most specific first,
// with their 省/市/区 suffix removed
func (s *CityService) matchParts(addr string) (*models.CityMatch, bool) {
	if addr == address.UnknownAddress {
		return nil, false
	}
	parts := strings.Fields(addr)
	for i := len(parts) - 1; i >= 0; i-- {
		part := parts[i]
		for _, marker := range []string{address.DistrictMarker, address.CityMarker, address.ProvinceMarker} {
			part = strings.TrimSuffix(part, marker)
		}
		if part == "" {
			continue
		}
		if coords, ok := s.resolver.FindByName(part); ok {
			return &models.CityMatch{Query: part, Coordinates: coords}, true
		}
		if coords, ok := s.resolver.FindByAdmin(part); ok {
			return &models.CityMatch{Query: part, Coordinates: coords}, true
		}
	}
	return nil, false
}

// cleanQuery trims and NFC-normalizes q, then validates its length
func (s *CityService) cleanQuery(q string) (string, error) {
	q = norm.NFC.String(strings.TrimSpace(q))
	if err := s.validator.Var(q, fmt.Sprintf("required,max=%d", maxQueryLen)); err != nil {
		s.logger.Warn().Str("query", q).Msg("Invalid city query")
		return "", fmt.Errorf("%w: query must be 1 to %d characters", models.ErrInvalidInput, maxQueryLen)
	}
	return q, nil
}

func (s *CityService) countLookup(field, result string) {
	if s.metrics != nil {
		s.metrics.CityLookupsTotal.WithLabelValues(field, result).Inc()
	}
}

func (s *CityService) countNormalize(result string) {
	if s.metrics != nil {
		s.metrics.AddressNormalizeTotal.WithLabelValues(result).Inc()
	}
}
