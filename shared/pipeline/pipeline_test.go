package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"boxes/infras/otel/mocks"
	"boxes/shared/cache"
	cacheMocks "boxes/shared/cache/mocks"
	"boxes/shared/failure"
	"boxes/shared/pipeline"
)

type echoRequest struct {
	Value string `json:"value" validate:"required"`
}

type cachedRequest struct {
	Value string `json:"value" validate:"required"`
}

func (cachedRequest) CacheKey() string          { return "test:cached" }
func (cachedRequest) Expiration() time.Duration { return time.Minute }

func TestChain_Order(t *testing.T) {
	var order []string

	stage := func(name string) pipeline.Behavior[string, string] {
		return func(next pipeline.Handler[string, string]) pipeline.Handler[string, string] {
			return func(ctx context.Context, req string) (string, error) {
				order = append(order, name)

				return next(ctx, req)
			}
		}
	}

	handler := pipeline.Chain(func(ctx context.Context, req string) (string, error) {
		order = append(order, "handler")

		return req, nil
	}, stage("outer"), stage("inner"))

	_, err := handler(context.Background(), "hello")

	assert.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestDefault_ValidationShortCircuits(t *testing.T) {
	store := cache.NewMemoryCache(mocks.NewOtel())

	invoked := false
	handler := pipeline.Default(func(ctx context.Context, req echoRequest) (string, error) {
		invoked = true

		return req.Value, nil
	}, store)

	_, err := handler(context.Background(), echoRequest{})

	assert.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.False(t, invoked, "handler must not run when validation fails")
}

func TestDefault_NonCacheablePassesThrough(t *testing.T) {
	store := cache.NewMemoryCache(mocks.NewOtel())

	calls := 0
	handler := pipeline.Default(func(ctx context.Context, req echoRequest) (string, error) {
		calls++

		return req.Value, nil
	}, store)

	for range 3 {
		res, err := handler(context.Background(), echoRequest{Value: "hello"})
		assert.NoError(t, err)
		assert.Equal(t, "hello", res)
	}

	assert.Equal(t, 3, calls)
}

func TestDefault_CacheableInvokesHandlerOnce(t *testing.T) {
	store := cache.NewMemoryCache(mocks.NewOtel())

	calls := 0
	handler := pipeline.Default(func(ctx context.Context, req cachedRequest) (string, error) {
		calls++

		return req.Value, nil
	}, store)

	for range 3 {
		res, err := handler(context.Background(), cachedRequest{Value: "hello"})
		assert.NoError(t, err)
		assert.Equal(t, "hello", res)
	}

	assert.Equal(t, 1, calls)
}

func TestDefault_HandlerErrorNotCached(t *testing.T) {
	store := cache.NewMemoryCache(mocks.NewOtel())

	calls := 0
	handler := pipeline.Default(func(ctx context.Context, req cachedRequest) (string, error) {
		calls++

		return "", failure.ExternalLookupError
	}, store)

	for range 2 {
		_, err := handler(context.Background(), cachedRequest{Value: "hello"})
		assert.ErrorIs(t, err, failure.ExternalLookupError)
	}

	assert.Equal(t, 2, calls, "failed results must not be served from cache")
}

func TestCaching_SaveFailureDoesNotFailRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockCache(ctrl)
	mockCache.EXPECT().
		Get(gomock.Any(), "test:cached", gomock.Any()).
		Return(cache.ErrNotFound)
	mockCache.EXPECT().
		Save(gomock.Any(), "test:cached", gomock.Any(), time.Minute).
		Return(errors.New("cache down"))

	handler := pipeline.Chain(func(ctx context.Context, req cachedRequest) (string, error) {
		return req.Value, nil
	}, pipeline.Caching[cachedRequest, string](mockCache))

	res, err := handler(context.Background(), cachedRequest{Value: "hello"})

	assert.NoError(t, err)
	assert.Equal(t, "hello", res)
}

func TestLogging_PropagatesErrorUnchanged(t *testing.T) {
	boom := errors.New("boom")

	handler := pipeline.Chain(func(ctx context.Context, req string) (string, error) {
		return "", boom
	}, pipeline.Logging[string, string]())

	_, err := handler(context.Background(), "hello")

	assert.ErrorIs(t, err, boom)
}
