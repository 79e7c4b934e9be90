package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evyataryagoni/cityweather/internal/address"
	"github.com/evyataryagoni/cityweather/internal/config"
	"github.com/evyataryagoni/cityweather/internal/directory"
	"github.com/evyataryagoni/cityweather/internal/geolocation"
	"github.com/evyataryagoni/cityweather/internal/handler"
	"github.com/evyataryagoni/cityweather/internal/limiter"
	"github.com/evyataryagoni/cityweather/internal/logger"
	"github.com/evyataryagoni/cityweather/internal/metrics"
	"github.com/evyataryagoni/cityweather/internal/resolver"
	"github.com/evyataryagoni/cityweather/internal/router"
	"github.com/evyataryagoni/cityweather/internal/service"
	"github.com/evyataryagoni/cityweather/internal/store"
	"github.com/evyataryagoni/cityweather/internal/weather"
)

// @title           CityWeather API
// @version         1.0
// @description     City directory, address normalization and per-device weather
// @host      localhost:3000
// @BasePath  /
func main() {
	appConfig := config.Load()

	appLogger := setupLogger(appConfig)
	metricsCollector := metrics.New()

	stateStore := setupStateStore(appConfig, appLogger)

	rateLimiter := setupRateLimiter(appConfig, appLogger)
	defer rateLimiter.Close()

	locator, closeLocator := setupLocator(appConfig, metricsCollector, appLogger)
	defer closeLocator()

	weatherClient := weather.NewClient(weather.Config{
		BaseURL:  appConfig.WeatherAPIURL,
		Key:      appConfig.WeatherAPIKey,
		Language: appConfig.WeatherLanguage,
		Unit:     appConfig.WeatherUnit,
		Timeout:  appConfig.UpstreamTimeout,
		RPS:      appConfig.UpstreamRPS,
		Burst:    appConfig.UpstreamBurst,
	}, metricsCollector, appLogger)
	if appConfig.WeatherAPIKey == "" {
		appLogger.Warn().Msg("WEATHER_API_KEY not set, weather requests will fail")
	}

	// Build application layers
	cityService := service.NewCityService(
		setupResolver(appConfig, appLogger),
		address.NewNormalizer(appConfig.DefaultRegionKey),
		metricsCollector,
		appLogger,
	)
	weatherService := service.NewWeatherService(locator, weatherClient, cityService, stateStore, metricsCollector, appLogger)
	defer weatherService.Close()

	appRouter := router.SetupRouter(router.Handlers{
		Cities:  handler.NewCityHandler(cityService),
		Devices: handler.NewDeviceHandler(weatherService),
	}, rateLimiter, metricsCollector, nil, appLogger)

	startServer(appConfig, appRouter, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:      appConfig.LogLevel,
		Pretty:     appConfig.LogPretty,
		OutputFile: appConfig.LogFile,
	})

	appLogger.Info().Msg("Starting city weather server...")
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("rate_limiter_type", appConfig.RateLimitType).
		Int("rate_limit", appConfig.RateLimit).
		Int("rate_limit_window", appConfig.RateLimitWindow).
		Str("state_store_type", appConfig.StateStoreType).
		Str("geo_provider", appConfig.GeoProvider).
		Str("default_region_key", appConfig.DefaultRegionKey).
		Msg("Configuration loaded")

	return appLogger
}

// setupResolver uses the compiled-in directory unless CITY_DATA_PATH is set
func setupResolver(appConfig *config.Config, log *logger.Logger) *resolver.Resolver {
	if appConfig.CityDataPath == "" {
		dir := directory.Default()
		log.Info().Int("cities", dir.Count()).Int("provinces", dir.Provinces()).Msg("Using compiled-in city directory")
		return resolver.New(dir)
	}

	dir, err := directory.LoadFile(appConfig.CityDataPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", appConfig.CityDataPath).Msg("Failed to load city directory")
	}
	log.Info().
		Str("path", appConfig.CityDataPath).
		Int("cities", dir.Count()).
		Int("provinces", dir.Provinces()).
		Msg("City directory loaded")
	return resolver.New(dir)
}

// setupStateStore initializes the device state store (memory, Redis or MySQL)
func setupStateStore(appConfig *config.Config, log *logger.Logger) store.Store {
	stateStore, err := store.NewStore(store.Config{
		Type:          appConfig.StateStoreType,
		MySQLDSN:      appConfig.MySQLDSN,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize state store")
	}
	log.Info().Str("type", appConfig.StateStoreType).Msg("State store initialized")
	return stateStore
}

// setupRateLimiter initializes the inbound rate limiter
func setupRateLimiter(appConfig *config.Config, log *logger.Logger) limiter.Limiter {
	rateLimiter, err := limiter.NewLimiter(limiter.LimiterConfig{
		Type:          appConfig.RateLimitType,
		Limit:         appConfig.RateLimit,
		Window:        time.Duration(appConfig.RateLimitWindow) * time.Second,
		RedisAddr:     appConfig.RedisAddr,
		RedisPassword: appConfig.RedisPassword,
		RedisDB:       appConfig.RedisDB,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize rate limiter")
	}

	log.Info().
		Str("type", appConfig.RateLimitType).
		Float64("requests_per_second", appConfig.RequestsPerSecond()).
		Msg("Rate limiter initialized")
	return rateLimiter
}

// setupLocator picks the IP geolocation provider
// The returned func releases its resources
func setupLocator(appConfig *config.Config, m *metrics.Metrics, log *logger.Logger) (geolocation.Locator, func()) {
	switch appConfig.GeoProvider {
	case "geoip":
		db, err := geolocation.OpenGeoIP(appConfig.GeoIPDBPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", appConfig.GeoIPDBPath).Msg("Failed to open GeoIP database")
		}
		log.Info().Str("path", appConfig.GeoIPDBPath).Msg("Using offline GeoIP database")
		return db, func() { db.Close() }

	case "tencent", "":
		if appConfig.TencentMapKey == "" {
			log.Warn().Msg("TENCENT_MAP_KEY not set, location requests will fail")
		}
		client := geolocation.NewTencentClient(geolocation.TencentConfig{
			BaseURL: appConfig.TencentMapURL,
			Key:     appConfig.TencentMapKey,
			Timeout: appConfig.UpstreamTimeout,
			RPS:     appConfig.UpstreamRPS,
			Burst:   appConfig.UpstreamBurst,
		}, m, log)
		return client, func() {}

	default:
		log.Fatal().Str("provider", appConfig.GeoProvider).Msg("Unknown geolocation provider")
		return nil, nil
	}
}

// startServer serves until SIGINT/SIGTERM, then drains in-flight requests
func startServer(appConfig *config.Config, appRouter http.Handler, log *logger.Logger) {
	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           appRouter,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().
			Str("port", appConfig.Port).
			Str("refresh", "http://localhost:"+appConfig.Port+"/v1/devices/{deviceID}/refresh").
			Str("health_check", "http://localhost:"+appConfig.Port+"/health").
			Str("metrics", "http://localhost:"+appConfig.Port+"/metrics").
			Msg("Server is running")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
	}
}
