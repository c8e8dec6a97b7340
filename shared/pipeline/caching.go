package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"boxes/shared/cache"
)

// DefaultExpiration applies to cacheable requests that declare none.
const DefaultExpiration = 5 * time.Minute

// Cacheable is implemented by requests that opt in to the caching stage.
// A zero Expiration falls back to DefaultExpiration.
type Cacheable interface {
	CacheKey() string
	Expiration() time.Duration
}

// Caching short-circuits the handler for requests that opt in via Cacheable:
// a hit returns the stored result without invoking the handler, a miss
// invokes it and stores the result under the declared key. Requests that do
// not opt in pass straight through.
func Caching[Req, Res any](store cache.Cache) Behavior[Req, Res] {
	return func(next Handler[Req, Res]) Handler[Req, Res] {
		return func(ctx context.Context, req Req) (Res, error) {
			cacheable, ok := any(req).(Cacheable)
			if !ok {
				return next(ctx, req)
			}

			key := cacheable.CacheKey()

			var res Res
			if err := store.Get(ctx, key, &res); err == nil {
				log.Debug().Str("cacheKey", key).Msg("pipeline cache hit")

				return res, nil
			}

			res, err := next(ctx, req)
			if err != nil {
				return res, err
			}

			ttl := cacheable.Expiration()
			if ttl <= 0 {
				ttl = DefaultExpiration
			}

			if err := store.Save(ctx, key, res, ttl); err != nil {
				log.Error().Err(err).Str("cacheKey", key).Msg("failed to save pipeline result to cache")
			}

			return res, nil
		}
	}
}
