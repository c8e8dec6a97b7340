package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goCache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"boxes/infras/otel"
)

const (
	memoryCleanupInterval = 10 * time.Minute
)

type memoryCache struct {
	store *goCache.Cache
	otel  otel.Otel
}

// NewMemoryCache returns a Cache backed by an in-process store. Entries are
// kept as marshaled payloads so callers observe the same snapshot semantics
// as the redis engine.
func NewMemoryCache(ot otel.Otel) Cache {
	return &memoryCache{
		store: goCache.New(goCache.NoExpiration, memoryCleanupInterval),
		otel:  ot,
	}
}

// Save implements Cache.
func (cache *memoryCache) Save(ctx context.Context, key string, value any, ttl time.Duration) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Save")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("cache.key", key)

	var payload []byte

	switch v := value.(type) {
	case string:
		payload = []byte(v)
	default:
		payload, err = json.Marshal(v)
		if err != nil {
			log.Error().Err(err).Str("key", key).Str("MemoryCache", "Save").Msg("failed to marshal cache")

			return fmt.Errorf("failed to marshal cache value: %w", err)
		}
	}

	cache.store.Set(key, payload, ttl)

	return nil
}

// Get implements Cache.
func (cache *memoryCache) Get(ctx context.Context, key string, value any) (err error) {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	scope.SetAttribute("cache.key", key)

	entry, found := cache.store.Get(key)
	if !found {
		return ErrNotFound
	}

	payload, ok := entry.([]byte)
	if !ok {
		return ErrNotFound
	}

	switch v := value.(type) {
	case *string:
		*v = string(payload)
	default:
		if err = json.Unmarshal(payload, value); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("MemoryCache", "Get").Msg("failed to unmarshal cache")

			return fmt.Errorf("failed to unmarshal cache value: %w", err)
		}
	}

	return nil
}

// Delete implements Cache.
func (cache *memoryCache) Delete(ctx context.Context, key string) error {
	_, scope := cache.otel.NewScope(ctx, otelScopeName, otelScopeName+".Delete")
	defer scope.End()

	scope.SetAttribute("cache.key", key)

	cache.store.Delete(key)

	return nil
}
