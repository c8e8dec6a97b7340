package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxes/infras/otel/mocks"
	"boxes/shared/cache"
)

func newRedisCache(t *testing.T) (cache.Cache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)

	client := goRedis.NewClient(&goRedis.Options{
		Addr: server.Addr(),
	})

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	store, _ := newRedisCache(t)
	ctx := context.Background()

	saved := snapshot{Name: "workshops", Count: 3}
	err := store.Save(ctx, "test:key", saved, time.Minute)
	require.NoError(t, err)

	var got snapshot
	err = store.Get(ctx, "test:key", &got)
	assert.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestRedisCache_GetMissing(t *testing.T) {
	store, _ := newRedisCache(t)

	var got snapshot
	err := store.Get(context.Background(), "test:absent", &got)
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRedisCache_Expiry(t *testing.T) {
	store, server := newRedisCache(t)
	ctx := context.Background()

	err := store.Save(ctx, "test:short", snapshot{Name: "gone"}, time.Second)
	require.NoError(t, err)

	server.FastForward(2 * time.Second)

	var got snapshot
	err = store.Get(ctx, "test:short", &got)
	assert.ErrorIs(t, err, cache.ErrNotFound)
}

func TestRedisCache_Delete(t *testing.T) {
	store, _ := newRedisCache(t)
	ctx := context.Background()

	err := store.Save(ctx, "test:key", snapshot{Name: "temp"}, time.Minute)
	require.NoError(t, err)

	err = store.Delete(ctx, "test:key")
	assert.NoError(t, err)

	var got snapshot
	err = store.Get(ctx, "test:key", &got)
	assert.ErrorIs(t, err, cache.ErrNotFound)
}
