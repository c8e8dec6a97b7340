package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"boxes/config"
	"boxes/infras/otel"
	"boxes/infras/redis"
	"boxes/shared/constant"
)

// ErrNotFound is returned by Get when the key is absent or expired,
// regardless of the backing engine.
var ErrNotFound = errors.New("cache: key not found")

// Cache is a process-wide key/value store with per-entry expiration.
// Implementations must provide atomic get/set per key.
type Cache interface {
	Save(ctx context.Context, key string, value any, ttl time.Duration) error
	Get(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// New selects the cache engine from configuration. The in-process engine is
// the default; redis is only dialed when explicitly enabled.
func New(cfg *config.Config, ot otel.Otel) Cache {
	if cfg.Cache.Engine == constant.CacheEngineRedis {
		return NewRedisCache(redis.New(cfg), ot)
	}

	log.Info().Msg("Using in-process memory cache")

	return NewMemoryCache(ot)
}
