package config

import (
	"testing"
	"time"

	env "github.com/caarlos0/env/v11"
)

func TestAppConfig_ParseEnv(t *testing.T) {
	t.Setenv("DEV", "false")
	t.Setenv("UPSTREAM_MODE", "mock")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.com/api/super-admin/")
	t.Setenv("UPSTREAM_TIMEOUT", "15s")
	t.Setenv("UPSTREAM_UPLOAD_TIMEOUT", "5m")
	t.Setenv("AUTH_SESSION_TTL", "12h")
	t.Setenv("AUTH_SIGNUP_ENABLED", "false")
	t.Setenv("REDIS_URI", "redis.internal:6380")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("APP_COOKIE_DOMAIN", ".admin.example.com")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Upstream.Mode != UpstreamModeMock {
		t.Errorf("expected mock upstream mode, got %q", cfg.Upstream.Mode)
	}
	if cfg.Upstream.BaseURL != "https://api.example.com/api/super-admin" {
		t.Errorf("expected trailing slash trimmed, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.Upstream.Timeout)
	}
	if cfg.Auth.SessionTTL != 12*time.Hour {
		t.Errorf("expected 12h session ttl, got %v", cfg.Auth.SessionTTL)
	}
	if cfg.Auth.SignupEnabled {
		t.Error("expected signup to be disabled")
	}
	if cfg.Redis.URI != "redis.internal:6380" {
		t.Errorf("unexpected redis uri %q", cfg.Redis.URI)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("unexpected http addr %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.CookieDomain != "admin.example.com" {
		t.Errorf("expected leading dot stripped, got %q", cfg.HTTP.CookieDomain)
	}
}

func TestUpstreamMode_UnmarshalText(t *testing.T) {
	var m UpstreamMode
	if err := m.UnmarshalText([]byte("LIVE")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != UpstreamModeLive {
		t.Errorf("expected live, got %q", m)
	}
	if err := m.UnmarshalText([]byte("staging")); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestUpstreamConfig_Sanitize(t *testing.T) {
	cfg := UpstreamConfig{
		BaseURL:       "  https://api.example.com/api/super-admin/  ",
		Timeout:       0,
		UploadTimeout: time.Second,
	}
	cfg.Sanitize()

	if cfg.BaseURL != "https://api.example.com/api/super-admin" {
		t.Errorf("unexpected base url %q", cfg.BaseURL)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
	// The upload timeout can never be tighter than the JSON timeout.
	if cfg.UploadTimeout != cfg.Timeout {
		t.Errorf("expected upload timeout raised to %v, got %v", cfg.Timeout, cfg.UploadTimeout)
	}
}

func TestHTTPConfig_SanitizeCookieDomain(t *testing.T) {
	tests := []struct {
		name     string
		domain   string
		expected string
	}{
		{name: "empty stays empty", domain: "", expected: ""},
		{name: "leading dot stripped", domain: ".admin.example.com", expected: "admin.example.com"},
		{name: "bare public suffix rejected", domain: "co.uk", expected: ""},
		{name: "bare tld rejected", domain: "com", expected: ""},
		{name: "registrable domain kept", domain: "example.co.uk", expected: "example.co.uk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := HTTPConfig{CookieDomain: tt.domain, CompressionLevel: 6}
			cfg.Sanitize()
			if cfg.CookieDomain != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, cfg.CookieDomain)
			}
		})
	}
}

func TestHTTPConfig_SanitizeCompressionLevel(t *testing.T) {
	cfg := HTTPConfig{CompressionLevel: 0}
	cfg.Sanitize()
	if cfg.CompressionLevel != 1 {
		t.Errorf("expected level clamped to 1, got %d", cfg.CompressionLevel)
	}

	cfg = HTTPConfig{CompressionLevel: 42}
	cfg.Sanitize()
	if cfg.CompressionLevel != 9 {
		t.Errorf("expected level clamped to 9, got %d", cfg.CompressionLevel)
	}
}

func TestAuthConfig_Sanitize(t *testing.T) {
	cfg := AuthConfig{SessionTTL: -time.Hour}
	cfg.Sanitize()
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("expected 24h fallback, got %v", cfg.SessionTTL)
	}
}

func TestObservabilityMetricsConfig_Sanitize(t *testing.T) {
	cfg := ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " ",
	}

	cfg.Sanitize()

	if cfg.Enabled {
		t.Fatalf("expected enabled to be false when address is empty")
	}

	cfg = ObservabilityMetricsConfig{
		Enabled:       true,
		StatsdAddress: " statsd:1234 ",
		Prefix:        ".adhyan_admin.",
	}

	cfg.Sanitize()

	if !cfg.IsEnabled() {
		t.Fatalf("expected metrics to remain enabled")
	}
	if cfg.StatsdAddress != "statsd:1234" {
		t.Fatalf("expected address to be trimmed, got %q", cfg.StatsdAddress)
	}
	if cfg.Prefix != "adhyan_admin" {
		t.Fatalf("expected prefix dots trimmed, got %q", cfg.Prefix)
	}
}

func TestAppConfig_DetectDevMode(t *testing.T) {
	t.Setenv("NODE_ENV", "development")
	cfg := AppConfig{}
	cfg.Sanitize()
	if !cfg.IsDev {
		t.Error("expected NODE_ENV=development to enable dev mode")
	}
}
