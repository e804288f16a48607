package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/adhyanguru/admin-go/config"
	"github.com/adhyanguru/admin-go/internal/adapters/authroles"
	redisadapter "github.com/adhyanguru/admin-go/internal/adapters/redis"
	"github.com/adhyanguru/admin-go/internal/ports"
	"github.com/adhyanguru/admin-go/internal/service"
)

// AuthConfig contains configuration for the auth service.
type AuthConfig struct {
	Auth          config.AuthConfig
	Authenticator ports.CredentialAuthenticator
	RedisClient   redis.UniversalClient
	Logger        *slog.Logger
}

// BuildAuthService wires credential auth against the platform API with a
// Redis-backed session store. Returns nil when the session store is not
// configured; the router then refuses all authenticated routes.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		if cfg.Logger != nil {
			cfg.Logger.Warn("auth service disabled: redis client not configured")
		}
		return nil
	}

	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")

	return service.NewAuthService(service.AuthServiceOptions{
		Authenticator: cfg.Authenticator,
		Sessions:      sessionStore,
		Roles:         authroles.StaticRoleMapper{},
		SessionTTL:    cfg.Auth.SessionTTL,
		Logger:        cfg.Logger,
	})
}
