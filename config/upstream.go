package config

import (
	"fmt"
	"strings"
	"time"
)

// UpstreamMode selects which platform API backend the console talks to.
type UpstreamMode string

const (
	// UpstreamModeLive targets the real Adhyan Guru platform API.
	UpstreamModeLive UpstreamMode = "live"
	// UpstreamModeMock runs an in-process seeded stub of the platform API
	// (for development and testing only).
	UpstreamModeMock UpstreamMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for UpstreamMode.
func (m *UpstreamMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "live", "mock":
		*m = UpstreamMode(v)
		return nil
	default:
		return fmt.Errorf("invalid UpstreamMode: %q (valid options: live, mock)", v)
	}
}

// UpstreamConfig contains connection settings for the Adhyan Guru
// super-admin REST API that backs every entity screen.
type UpstreamConfig struct {
	// Mode selects the live platform API or the in-process mock.
	Mode UpstreamMode `env:"MODE" envDefault:"live"`

	// BaseURL is the API root, including the /api/super-admin prefix.
	BaseURL string `env:"BASE_URL" envDefault:"https://api.adhyan.guru/api/super-admin"`

	// Timeout bounds each request to the platform API.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`

	// UploadTimeout bounds multipart requests carrying file payloads,
	// which can be far larger than JSON bodies (videos up to 500MB).
	UploadTimeout time.Duration `env:"UPLOAD_TIMEOUT" envDefault:"10m"`
}

// Sanitize normalizes upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	u.BaseURL = strings.TrimRight(strings.TrimSpace(u.BaseURL), "/")
	if u.Timeout <= 0 {
		u.Timeout = 30 * time.Second
	}
	if u.UploadTimeout < u.Timeout {
		u.UploadTimeout = u.Timeout
	}
}
