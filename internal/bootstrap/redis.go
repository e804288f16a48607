package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/adhyanguru/admin-go/config"
)

// NewRedisClient builds the session-store client from configuration.
// Cluster and sentinel topologies are supported for production deployments;
// the default is a single node.
func NewRedisClient(cfg config.RedisConfig, logger *slog.Logger) redis.UniversalClient {
	switch {
	case cfg.UseCluster && len(cfg.ClusterNodes) > 0:
		logger.Info("connecting to redis cluster", "nodes", cfg.ClusterNodes)
		return redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    cfg.ClusterNodes,
			Password: cfg.Password,
		})
	case cfg.UseSentinel:
		logger.Info("connecting to redis via sentinel", "master", cfg.SentinelMasterName, "nodes", cfg.SentinelNodes)
		return redis.NewFailoverClient(&redis.FailoverOptions{
			MasterName:       cfg.SentinelMasterName,
			SentinelAddrs:    cfg.SentinelNodes,
			SentinelPassword: cfg.SentinelPassword,
			Password:         cfg.Password,
		})
	default:
		return redis.NewClient(&redis.Options{
			Addr:     cfg.URI,
			Password: cfg.Password,
		})
	}
}

// PingRedis verifies connectivity at startup so a misconfigured session
// store fails fast instead of on the first login.
func PingRedis(ctx context.Context, client redis.UniversalClient) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}
