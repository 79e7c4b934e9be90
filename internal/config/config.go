package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port string

	// Logging
	LogLevel  string
	LogPretty bool
	LogFile   string

	// Inbound rate limiting
	RateLimitType   string // "memory" or "redis"
	RateLimit       int    // requests allowed per window
	RateLimitWindow int    // window in seconds

	// Device state store
	StateStoreType string // "memory", "redis" or "mysql"
	MySQLDSN       string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	// City directory
	CityDataPath     string // optional CSV replacing the compiled-in table
	DefaultRegionKey string // fallback key for unparsable addresses

	// IP geolocation
	GeoProvider   string // "tencent" or "geoip"
	TencentMapKey string
	TencentMapURL string
	GeoIPDBPath   string

	// Weather
	WeatherAPIKey   string
	WeatherAPIURL   string
	WeatherLanguage string
	WeatherUnit     string

	// Outbound calls
	UpstreamTimeout time.Duration
	UpstreamRPS     float64
	UpstreamBurst   int
}

// Load reads configuration from a .env file, if present, and the environment
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port: getEnv("PORT", "3000"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
		LogFile:   getEnv("LOG_FILE", ""),

		RateLimitType:   getEnv("RATE_LIMITER_TYPE", "memory"),
		RateLimit:       getEnvAsInt("RATE_LIMIT", 10),
		RateLimitWindow: getEnvAsInt("RATE_LIMIT_WINDOW", 1),

		StateStoreType: getEnv("STATE_STORE_TYPE", "memory"),
		MySQLDSN:       getEnv("MYSQL_DSN", ""),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        getEnvAsInt("REDIS_DB", 0),

		CityDataPath:     getEnv("CITY_DATA_PATH", ""),
		DefaultRegionKey: getEnv("DEFAULT_REGION_KEY", "广东/深圳/南山"),

		GeoProvider:   getEnv("GEO_PROVIDER", "tencent"),
		TencentMapKey: getEnv("TENCENT_MAP_KEY", ""),
		TencentMapURL: getEnv("TENCENT_MAP_URL", "https://apis.map.qq.com"),
		GeoIPDBPath:   getEnv("GEOIP_DB_PATH", "./data/GeoLite2-City.mmdb"),

		WeatherAPIKey:   getEnv("WEATHER_API_KEY", ""),
		WeatherAPIURL:   getEnv("WEATHER_API_URL", "https://api.seniverse.com"),
		WeatherLanguage: getEnv("WEATHER_LANGUAGE", "zh-Hans"),
		WeatherUnit:     getEnv("WEATHER_UNIT", "c"),

		UpstreamTimeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		UpstreamRPS:     getEnvAsFloat("UPSTREAM_RPS", 5),
		UpstreamBurst:   getEnvAsInt("UPSTREAM_BURST", 5),
	}
}

// RequestsPerSecond is the effective inbound rate, e.g. 10 per 5s = 2.0
func (c *Config) RequestsPerSecond() float64 {
	if c.RateLimitWindow <= 0 {
		return float64(c.RateLimit)
	}
	return float64(c.RateLimit) / float64(c.RateLimitWindow)
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer
// Returns default if not set or invalid
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat reads an environment variable as a float64
// Returns default if not set or invalid
func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsBool accepts anything strconv.ParseBool does
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts Go durations ("10s") or plain seconds ("10")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}

	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
