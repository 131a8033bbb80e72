package bootstrap

import (
	"context"

	"event-marketplace/internal/infra/cache"
	"event-marketplace/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewRedisClient,
		NewStatisticsStore,
	),
)

// NewRedisClient yields a nil client when REDIS_ADDR is empty.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	client, cleanup, err := cache.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}

func NewStatisticsStore(client *redis.Client, cfg config.Config) cache.StatisticsStore {
	return cache.NewStatisticsStore(client, cfg.Redis.StatsTTL)
}
