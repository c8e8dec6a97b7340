package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"boxes/infras/otel"
	"boxes/internal/domains/workshop/model"
	"boxes/shared/cache"
	"boxes/shared/constant"
)

const (
	cacheKeyActiveWorkshops = "workshop:active"
	cacheExpiration         = 5 * time.Minute
)

// Cached is a Workshop that answers from a short-lived process-wide snapshot
// of the active list, shielding the provider from repeated calls.
type Cached interface {
	Workshop
	Invalidate(ctx context.Context) error
}

type cachedImpl struct {
	inner Workshop
	cache cache.Cache
	otel  otel.Otel
}

func NewCached(inner Workshop, store cache.Cache, ot otel.Otel) Cached {
	return &cachedImpl{
		inner: inner,
		cache: store,
		otel:  ot,
	}
}

// ListActive returns the cached snapshot when unexpired; otherwise it asks
// the inner service and stores the result. Concurrent misses may each fetch;
// at this scale the stampede is acceptable.
func (c *cachedImpl) ListActive(ctx context.Context) (workshops []model.Workshop, err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".workshop.cached.ListActive")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = c.cache.Get(ctx, cacheKeyActiveWorkshops, &workshops); err == nil {
		log.Debug().Str("cacheKey", cacheKeyActiveWorkshops).Msg("cache hit for active workshops")

		return workshops, nil
	}

	workshops, err = c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Save(ctx, cacheKeyActiveWorkshops, workshops, cacheExpiration); err != nil {
		log.Error().Err(err).Msg("failed to save active workshops to cache")
	}

	return workshops, nil
}

// GetByID always goes through the cached list; it never bypasses the cache
// for single lookups.
func (c *cachedImpl) GetByID(ctx context.Context, placeID int) (model.Workshop, bool, error) {
	workshops, err := c.ListActive(ctx)
	if err != nil {
		return model.Workshop{}, false, err
	}

	for _, workshop := range workshops {
		if workshop.ID == placeID {
			return workshop, true, nil
		}
	}

	return model.Workshop{}, false, nil
}

// Invalidate clears the snapshot, forcing the next call to refetch.
func (c *cachedImpl) Invalidate(ctx context.Context) error {
	return c.cache.Delete(ctx, cacheKeyActiveWorkshops) //nolint:wrapcheck
}
