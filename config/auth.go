package config

import "time"

// AuthConfig groups session-related configuration.
//
// Authentication itself is delegated to the platform API: the console
// exchanges credentials for a bearer token via /login and keeps the token
// on a server-side session record.
type AuthConfig struct {
	// SessionTTL bounds how long a browser session (and the bearer token it
	// holds) is kept before the user must log in again.
	SessionTTL time.Duration `env:"AUTH_SESSION_TTL" envDefault:"24h"`

	// SignupEnabled exposes the /signup page for creating new admin
	// accounts. Disable in deployments where admins are provisioned by the
	// platform owner only.
	SignupEnabled bool `env:"AUTH_SIGNUP_ENABLED" envDefault:"true"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionTTL <= 0 {
		a.SessionTTL = 24 * time.Hour
	}
}
