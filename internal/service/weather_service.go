package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/evyataryagoni/cityweather/internal/geolocation"
	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/evyataryagoni/cityweather/internal/metrics"
	"github.com/evyataryagoni/cityweather/internal/models"
	"github.com/evyataryagoni/cityweather/internal/store"
	"github.com/evyataryagoni/cityweather/internal/weather"
	"github.com/go-playground/validator/v10"
)

// WeatherService drives the device flow: IP -> address -> city -> weather
// The latest location and weather of every device live in the state store
type WeatherService struct {
	locator   geolocation.Locator
	source    weather.Source
	cities    *CityService
	store     store.Store
	validator *validator.Validate
	metrics   *metrics.Metrics
	logger    *logger.Logger
}

// NewWeatherService creates a weather service; m and log may be nil
func NewWeatherService(locator geolocation.Locator, source weather.Source, cities *CityService, st store.Store, m *metrics.Metrics, log *logger.Logger) *WeatherService {
	if log == nil {
		log = logger.NewDefault()
	}
	if cities == nil {
		cities = NewCityService(nil, nil, m, log)
	}
	return &WeatherService{
		locator:   locator,
		source:    source,
		cities:    cities,
		store:     st,
		validator: validator.New(),
		metrics:   m,
		logger:    log.WithComponent("WeatherService"),
	}
}

// Locate resolves ip to an address and records it for deviceID
// An empty ip lets the provider use the caller's address; an empty
// deviceID skips the store
func (s *WeatherService) Locate(ctx context.Context, deviceID, ip string) (*models.Location, error) {
	if err := s.validateDevice(deviceID, false); err != nil {
		return nil, err
	}
	if err := s.validator.Var(ip, "omitempty,ip"); err != nil {
		s.logger.Warn().Str("ip", ip).Msg("Invalid IP address format")
		return nil, fmt.Errorf("%w: invalid IP address format", models.ErrInvalidInput)
	}

	log := s.logger.WithDevice(deviceID)
	log.Debug().Str("ip", ip).Str("provider", s.locator.Name()).Msg("Locating IP address")

	loc, err := s.locator.Locate(ctx, ip)
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("IP location failed")
		return nil, err
	}

	log.Info().Str("ip", loc.IP).Str("address", loc.Address).Msg("IP located")

	if deviceID != "" {
		if err := s.record("save_location", s.store.SaveLocation(ctx, deviceID, loc)); err != nil {
			return nil, fmt.Errorf("failed to save location: %w", err)
		}
	}
	return loc, nil
}

// WeatherForAddress fetches the weather for the city addr resolves to
// A failure never replaces the last successful weather; a device with no
// weather yet gets an invalid entry carrying the status text instead
func (s *WeatherService) WeatherForAddress(ctx context.Context, deviceID, addr string) (*models.Weather, error) {
	if err := s.validateDevice(deviceID, false); err != nil {
		return nil, err
	}
	log := s.logger.WithDevice(deviceID)

	match, err := s.cities.ResolveAddress(addr)
	if err != nil {
		if errors.Is(err, models.ErrCityNotFound) {
			s.saveFailure(ctx, deviceID, err)
		}
		return nil, err
	}

	w, err := s.source.Current(ctx, match.Coordinates)
	if err != nil {
		log.Error().Err(err).Str("key", match.Query).Msg("Weather update failed")
		s.saveFailure(ctx, deviceID, err)
		return nil, err
	}
	w.Key = match.Query

	log.Info().Str("key", w.Key).Str("display", w.DisplayString()).Msg("Weather updated")

	if deviceID != "" {
		if err := s.record("save_weather", s.store.SaveWeather(ctx, deviceID, w)); err != nil {
			return nil, fmt.Errorf("failed to save weather: %w", err)
		}
	}
	return w, nil
}

// Refresh locates ip, then updates the weather for the resulting address
func (s *WeatherService) Refresh(ctx context.Context, deviceID, ip string) (*models.DeviceStatus, error) {
	if err := s.validateDevice(deviceID, true); err != nil {
		return nil, err
	}

	loc, err := s.Locate(ctx, deviceID, ip)
	if err != nil {
		return nil, err
	}

	w, err := s.WeatherForAddress(ctx, deviceID, loc.Address)
	if err != nil {
		return nil, err
	}

	return &models.DeviceStatus{
		DeviceID: deviceID,
		Location: loc,
		Weather:  w,
		Display:  w.DisplayString(),
	}, nil
}

// Status returns the latest stored state of deviceID
// Returns ErrNotFound when the device has neither a location nor weather
func (s *WeatherService) Status(ctx context.Context, deviceID string) (*models.DeviceStatus, error) {
	if err := s.validateDevice(deviceID, true); err != nil {
		return nil, err
	}

	status := &models.DeviceStatus{DeviceID: deviceID, Display: weather.StatusPending}

	loc, err := s.store.LatestLocation(ctx, deviceID)
	switch {
	case err == nil:
		status.Location = loc
	case !errors.Is(err, store.ErrNotFound):
		s.record("load_location", err)
		return nil, fmt.Errorf("failed to load location: %w", err)
	}

	w, err := s.store.LatestWeather(ctx, deviceID)
	switch {
	case err == nil:
		status.Weather = w
		status.Display = w.DisplayString()
	case !errors.Is(err, store.ErrNotFound):
		s.record("load_weather", err)
		return nil, fmt.Errorf("failed to load weather: %w", err)
	}

	if status.Location == nil && status.Weather == nil {
		return nil, fmt.Errorf("no state for device %s: %w", deviceID, models.ErrNotFound)
	}
	return status, nil
}

// Close releases the state store
func (s *WeatherService) Close() error {
	return s.store.Close()
}

func (s *WeatherService) validateDevice(deviceID string, required bool) error {
	tag := "omitempty,max=64,printascii,excludesall=/ "
	if required {
		tag = "required,max=64,printascii,excludesall=/ "
	}
	if err := s.validator.Var(deviceID, tag); err != nil {
		return fmt.Errorf("%w: invalid device id", models.ErrInvalidInput)
	}
	return nil
}

func (s *WeatherService) saveFailure(ctx context.Context, deviceID string, cause error) {
	if deviceID == "" {
		return
	}
	log := s.logger.WithDevice(deviceID)

	prev, err := s.store.LatestWeather(ctx, deviceID)
	switch {
	case err == nil && prev.Valid:
		log.Debug().Str("status", weather.StatusText(cause)).Msg("Keeping last weather after failed update")
		return
	case err != nil && !errors.Is(err, store.ErrNotFound):
		s.record("load_weather", err)
		log.Error().Err(err).Msg("Failed to load weather before recording failure")
		return
	}

	if err := s.record("save_weather", s.store.SaveWeather(ctx, deviceID, weather.Failed(cause))); err != nil {
		log.Error().Err(err).Msg("Failed to record weather failure")
	}
}

// record counts a store operation and passes err through
func (s *WeatherService) record(operation string, err error) error {
	if s.metrics != nil {
		result := "success"
		if err != nil {
			result = "error"
		}
		s.metrics.StoreOperationsTotal.WithLabelValues(operation, result).Inc()
	}
	return err
}
