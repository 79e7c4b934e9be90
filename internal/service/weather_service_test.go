package service

import (
	"context"
	"errors"
	"testing"

	"github.com/evyataryagoni/cityweather/internal/geolocation"
	"github.com/evyataryagoni/cityweather/internal/metrics"
	"github.com/evyataryagoni/cityweather/internal/models"
	"github.com/evyataryagoni/cityweather/internal/resolver"
	"github.com/evyataryagoni/cityweather/internal/store"
	"github.com/evyataryagoni/cityweather/internal/weather"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type weatherFixture struct {
	locator *geolocation.MockLocator
	source  *weather.MockSource
	store   *store.MockStore
	service *WeatherService
}

func newWeatherFixture(m *metrics.Metrics) *weatherFixture {
	f := &weatherFixture{
		locator: geolocation.NewMockLocator(),
		source:  weather.NewMockSource(),
		store:   store.NewMockStore(),
	}
	cities := NewCityService(resolver.New(testDirectory()), nil, nil, nil)
	f.service = NewWeatherService(f.locator, f.source, cities, f.store, m, nil)
	return f
}

// TestWeatherService_Refresh_Success tests the full device flow
func TestWeatherService_Refresh_Success(t *testing.T) {
	f := newWeatherFixture(nil)
	ctx := context.Background()

	status, err := f.service.Refresh(ctx, "esp32-1", "113.88.1.1")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	if status.Display != "26°C 多云" {
		t.Errorf("expected display '26°C 多云', got '%s'", status.Display)
	}
	if status.Weather.Key != "广东/深圳/南山" {
		t.Errorf("expected key '广东/深圳/南山', got '%s'", status.Weather.Key)
	}

	// Weather was requested for the 南山 record
	if len(f.source.CurrentCalls) != 1 {
		t.Fatalf("expected 1 weather call, got %d", len(f.source.CurrentCalls))
	}
	if got := f.source.CurrentCalls[0]; got.Lat != 22.5333 || got.Lon != 113.9304 {
		t.Errorf("unexpected coordinates %+v", got)
	}
	if len(f.locator.LocateCalls) != 1 || f.locator.LocateCalls[0] != "113.88.1.1" {
		t.Errorf("unexpected locate calls %v", f.locator.LocateCalls)
	}

	// Both results were persisted
	stored, err := f.service.Status(ctx, "esp32-1")
	if err != nil {
		t.Fatalf("expected stored status, got: %v", err)
	}
	if stored.Location.Address != "广东省 深圳市 南山区" || stored.Display != status.Display {
		t.Errorf("unexpected stored status %+v", stored)
	}
}

// TestWeatherService_Refresh_OfflineLocation tests a location without a district
func TestWeatherService_Refresh_OfflineLocation(t *testing.T) {
	f := newWeatherFixture(nil)
	f.locator.Locations["1.2.3.4"] = &models.Location{
		Province: "北京",
		City:     "海淀",
		Address:  "北京 海淀",
		Provider: "geoip",
	}

	status, err := f.service.Refresh(context.Background(), "esp32-1", "1.2.3.4")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if status.Weather.Key != "海淀" {
		t.Errorf("expected key '海淀', got '%s'", status.Weather.Key)
	}
	if got := f.source.CurrentCalls[0]; got.Lat != 39.9593 {
		t.Errorf("expected 海淀 coordinates, got %+v", got)
	}
}

// TestWeatherService_Locate_InvalidInput tests validation before any upstream call
func TestWeatherService_Locate_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		deviceID string
		ip       string
	}{
		{"invalid ip", "esp32-1", "not-an-ip"},
		{"out of range ip", "esp32-1", "300.300.300.300"},
		{"device id with slash", "a/b", "8.8.8.8"},
		{"device id with space", "a b", "8.8.8.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWeatherFixture(nil)

			_, err := f.service.Locate(context.Background(), tt.deviceID, tt.ip)
			if !errors.Is(err, models.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if len(f.locator.LocateCalls) != 0 {
				t.Errorf("expected 0 locate calls, got %d", len(f.locator.LocateCalls))
			}
		})
	}
}

// TestWeatherService_Locate_NoDevice tests that anonymous lookups are not stored
func TestWeatherService_Locate_NoDevice(t *testing.T) {
	f := newWeatherFixture(nil)

	loc, err := f.service.Locate(context.Background(), "", "")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if loc.Address == "" {
		t.Error("expected an address")
	}
	if len(f.store.SaveLocationCalls) != 0 {
		t.Errorf("expected no store writes, got %d", len(f.store.SaveLocationCalls))
	}
}

// TestWeatherService_Locate_UpstreamError tests provider failures
func TestWeatherService_Locate_UpstreamError(t *testing.T) {
	f := newWeatherFixture(nil)
	f.locator.LocateError = models.ErrUpstream

	_, err := f.service.Refresh(context.Background(), "esp32-1", "8.8.8.8")
	if !errors.Is(err, models.ErrUpstream) {
		t.Errorf("expected ErrUpstream, got %v", err)
	}
	if len(f.source.CurrentCalls) != 0 {
		t.Error("weather must not be requested without a location")
	}
}

// TestWeatherService_WeatherForAddress_CityNotFound tests that the failure is shown on the device
func TestWeatherService_WeatherForAddress_CityNotFound(t *testing.T) {
	f := newWeatherFixture(nil)
	ctx := context.Background()

	_, err := f.service.WeatherForAddress(ctx, "esp32-1", "浙江省 杭州市 西湖区")
	if !errors.Is(err, models.ErrCityNotFound) {
		t.Fatalf("expected ErrCityNotFound, got %v", err)
	}

	status, err := f.service.Status(ctx, "esp32-1")
	if err != nil {
		t.Fatalf("expected stored status, got: %v", err)
	}
	if status.Display != weather.StatusCityNotFound {
		t.Errorf("expected display '%s', got '%s'", weather.StatusCityNotFound, status.Display)
	}
	if status.Weather.Valid {
		t.Error("expected invalid weather")
	}
}

// TestWeatherService_WeatherForAddress_SourceError tests weather provider failures
func TestWeatherService_WeatherForAddress_SourceError(t *testing.T) {
	f := newWeatherFixture(nil)
	f.source.CurrentError = models.ErrMissingAPIKey
	ctx := context.Background()

	_, err := f.service.WeatherForAddress(ctx, "esp32-1", "广东省 深圳市 南山区")
	if !errors.Is(err, models.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	status, _ := f.service.Status(ctx, "esp32-1")
	if status == nil || status.Display != weather.StatusMissingKey {
		t.Errorf("expected display '%s', got %+v", weather.StatusMissingKey, status)
	}

	// A later failure replaces an earlier failure's status text
	f.source.CurrentError = models.ErrUnreachable
	f.service.WeatherForAddress(ctx, "esp32-1", "广东省 深圳市 南山区")

	status, _ = f.service.Status(ctx, "esp32-1")
	if status == nil || status.Display != weather.StatusConnectFailed {
		t.Errorf("expected display '%s', got %+v", weather.StatusConnectFailed, status)
	}
}

// TestWeatherService_WeatherForAddress_KeepsLastWeather tests that a failed
// update leaves the last successful weather on the device
func TestWeatherService_WeatherForAddress_KeepsLastWeather(t *testing.T) {
	tests := []struct {
		name string
		err  error
		addr string
	}{
		{"source error", errors.New("boom"), "广东省 深圳市 南山区"},
		{"unreachable", models.ErrUnreachable, "广东省 深圳市 南山区"},
		{"city not found", nil, "浙江省 杭州市 西湖区"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newWeatherFixture(nil)
			ctx := context.Background()

			if _, err := f.service.Refresh(ctx, "esp32-1", "113.88.1.1"); err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}

			f.source.CurrentError = tt.err
			if _, err := f.service.WeatherForAddress(ctx, "esp32-1", tt.addr); err == nil {
				t.Fatal("expected error, got nil")
			}

			status, err := f.service.Status(ctx, "esp32-1")
			if err != nil {
				t.Fatalf("expected stored status, got: %v", err)
			}
			if !status.Weather.Valid || status.Display != "26°C 多云" {
				t.Errorf("expected last weather '26°C 多云', got %+v", status.Weather)
			}
			if len(f.store.SaveWeatherCalls) != 1 {
				t.Errorf("expected 1 weather save, got %d", len(f.store.SaveWeatherCalls))
			}
		})
	}
}

// TestWeatherService_StoreError tests persistence failures
func TestWeatherService_StoreError(t *testing.T) {
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	f := newWeatherFixture(m)
	f.store.SaveError = errors.New("connection refused")

	_, err := f.service.Locate(context.Background(), "esp32-1", "8.8.8.8")
	if err == nil {
		t.Fatal("expected store error, got nil")
	}

	if got := testutil.ToFloat64(m.StoreOperationsTotal.WithLabelValues("save_location", "error")); got != 1 {
		t.Errorf("expected 1 failed save, got %v", got)
	}
}

// TestWeatherService_Status tests the pending and not-found states
func TestWeatherService_Status(t *testing.T) {
	f := newWeatherFixture(nil)
	ctx := context.Background()

	if _, err := f.service.Status(ctx, "unknown"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.service.Status(ctx, ""); !errors.Is(err, models.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}

	// Location known, weather not yet fetched
	f.service.Locate(ctx, "esp32-2", "8.8.8.8")
	status, err := f.service.Status(ctx, "esp32-2")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if status.Display != weather.StatusPending || status.Weather != nil {
		t.Errorf("expected pending status, got %+v", status)
	}
}

// TestWeatherService_Status_LoadError tests store read failures
func TestWeatherService_Status_LoadError(t *testing.T) {
	f := newWeatherFixture(nil)
	f.store.LoadError = errors.New("timeout")

	_, err := f.service.Status(context.Background(), "esp32-1")
	if err == nil || errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected load error, got %v", err)
	}
}

// TestWeatherService_Close tests that Close reaches the store
func TestWeatherService_Close(t *testing.T) {
	f := newWeatherFixture(nil)

	if err := f.service.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !f.store.CloseCalled {
		t.Error("expected store Close to be called")
	}
}
