package config

import (
	"testing"
	"time"
)

// TestLoad_Defaults tests the values used when nothing is set
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("STATE_STORE_TYPE", "")
	t.Setenv("UPSTREAM_TIMEOUT", "")
	t.Setenv("DEFAULT_REGION_KEY", "")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Port)
	}
	if cfg.StateStoreType != "memory" {
		t.Errorf("expected memory state store, got %s", cfg.StateStoreType)
	}
	if cfg.UpstreamTimeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.UpstreamTimeout)
	}
	if cfg.DefaultRegionKey != "广东/深圳/南山" {
		t.Errorf("expected default region key, got %s", cfg.DefaultRegionKey)
	}
}

// TestLoad_FromEnvironment tests overriding values
func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("RATE_LIMIT", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "5")
	t.Setenv("UPSTREAM_RPS", "0.5")
	t.Setenv("UPSTREAM_TIMEOUT", "3")
	t.Setenv("LOG_PRETTY", "false")
	t.Setenv("GEO_PROVIDER", "geoip")

	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.Port)
	}
	if got := cfg.RequestsPerSecond(); got != 2.0 {
		t.Errorf("expected 2.0 req/s, got %v", got)
	}
	if cfg.UpstreamRPS != 0.5 {
		t.Errorf("expected 0.5 upstream rps, got %v", cfg.UpstreamRPS)
	}
	if cfg.UpstreamTimeout != 3*time.Second {
		t.Errorf("expected 3s timeout, got %s", cfg.UpstreamTimeout)
	}
	if cfg.LogPretty {
		t.Error("expected pretty logging to be disabled")
	}
	if cfg.GeoProvider != "geoip" {
		t.Errorf("expected geoip provider, got %s", cfg.GeoProvider)
	}
}

// TestGetEnvHelpers_InvalidValues tests fallback on unparsable values
func TestGetEnvHelpers_InvalidValues(t *testing.T) {
	t.Setenv("TEST_INT", "abc")
	t.Setenv("TEST_FLOAT", "x.y")
	t.Setenv("TEST_BOOL", "maybe")
	t.Setenv("TEST_DURATION", "soon")

	if got := getEnvAsInt("TEST_INT", 7); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := getEnvAsFloat("TEST_FLOAT", 1.5); got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
	if got := getEnvAsBool("TEST_BOOL", true); !got {
		t.Error("expected true")
	}
	if got := getEnvAsDuration("TEST_DURATION", time.Minute); got != time.Minute {
		t.Errorf("expected 1m, got %s", got)
	}
}

// TestRequestsPerSecond_ZeroWindow tests that a zero window does not divide by zero
func TestRequestsPerSecond_ZeroWindow(t *testing.T) {
	cfg := &Config{RateLimit: 4, RateLimitWindow: 0}

	if got := cfg.RequestsPerSecond(); got != 4 {
		t.Errorf("expected 4, got %v", got)
	}
}
