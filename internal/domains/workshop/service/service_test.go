package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"boxes/infras/otel/mocks"
	workshopMocks "boxes/internal/domains/workshop/mocks"
	"boxes/internal/domains/workshop/provider"
	"boxes/internal/domains/workshop/service"
	"boxes/shared/cache"
	"boxes/shared/failure"
)

func providerRecords() []provider.WorkshopRecord {
	address := &provider.Address{FormattedAddress: "Av. Siempre Viva 742"}

	return []provider.WorkshopRecord{
		{ID: 1, Name: "Taller Norte", Active: true, Address: address},
		{ID: 2, Name: "Taller Sur", Active: false},
	}
}

func TestWorkshopService_ListActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchWorkshops(gomock.Any()).
		Return(providerRecords(), nil)

	svc := service.New(mockFetcher, mocks.NewOtel())

	workshops, err := svc.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, workshops, 2)
	assert.Equal(t, "Taller Norte", workshops[0].Name)
	assert.True(t, workshops[0].Active)
	require.NotNil(t, workshops[0].Address)
	assert.Equal(t, "Av. Siempre Viva 742", *workshops[0].Address)
	assert.Nil(t, workshops[1].Address)
	assert.False(t, workshops[1].Active)
}

func TestWorkshopService_ListActivePropagatesLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchWorkshops(gomock.Any()).
		Return(nil, failure.ExternalLookupError)

	svc := service.New(mockFetcher, mocks.NewOtel())

	_, err := svc.ListActive(context.Background())

	assert.ErrorIs(t, err, failure.ExternalLookupError)
}

func TestWorkshopService_GetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchWorkshops(gomock.Any()).
		Return(providerRecords(), nil).
		Times(2)

	svc := service.New(mockFetcher, mocks.NewOtel())

	workshop, found, err := svc.GetByID(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Taller Sur", workshop.Name)

	_, found, err = svc.GetByID(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCachedWorkshopService_FetchesOnceWithinTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchWorkshops(gomock.Any()).
		Return(providerRecords(), nil).
		Times(1)

	svc := service.NewCached(
		service.New(mockFetcher, mocks.NewOtel()),
		cache.NewMemoryCache(mocks.NewOtel()),
		mocks.NewOtel(),
	)

	for range 3 {
		workshops, err := svc.ListActive(context.Background())
		require.NoError(t, err)
		assert.Len(t, workshops, 2)
	}
}

func TestCachedWorkshopService_InvalidateForcesRefetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchWorkshops(gomock.Any()).
		Return(providerRecords(), nil).
		Times(2)

	svc := service.NewCached(
		service.New(mockFetcher, mocks.NewOtel()),
		cache.NewMemoryCache(mocks.NewOtel()),
		mocks.NewOtel(),
	)

	ctx := context.Background()

	_, err := svc.ListActive(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Invalidate(ctx))

	_, err = svc.ListActive(ctx)
	require.NoError(t, err)
}

func TestCachedWorkshopService_ErrorNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	gomock.InOrder(
		mockFetcher.EXPECT().
			FetchWorkshops(gomock.Any()).
			Return(nil, failure.ExternalLookupError),
		mockFetcher.EXPECT().
			FetchWorkshops(gomock.Any()).
			Return(providerRecords(), nil),
	)

	svc := service.NewCached(
		service.New(mockFetcher, mocks.NewOtel()),
		cache.NewMemoryCache(mocks.NewOtel()),
		mocks.NewOtel(),
	)

	ctx := context.Background()

	_, err := svc.ListActive(ctx)
	assert.ErrorIs(t, err, failure.ExternalLookupError)

	workshops, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, workshops, 2)
}

func TestCachedWorkshopService_GetByIDUsesCachedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchWorkshops(gomock.Any()).
		Return(providerRecords(), nil).
		Times(1)

	svc := service.NewCached(
		service.New(mockFetcher, mocks.NewOtel()),
		cache.NewMemoryCache(mocks.NewOtel()),
		mocks.NewOtel(),
	)

	ctx := context.Background()

	workshop, found, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Taller Norte", workshop.Name)

	_, found, err = svc.GetByID(ctx, 99)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestWorkshopQuery_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFetcher := workshopMocks.NewMockFetcher(ctrl)
	mockFetcher.EXPECT().
		FetchWorkshops(gomock.Any()).
		Return(providerRecords(), nil).
		Times(1)

	store := cache.NewMemoryCache(mocks.NewOtel())
	cached := service.NewCached(service.New(mockFetcher, mocks.NewOtel()), store, mocks.NewOtel())
	query := service.NewQuery(cached, store, mocks.NewOtel())

	ctx := context.Background()

	// Second call is served by the query-level cache.
	for range 2 {
		workshops, err := query.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, workshops, 2)
		assert.Equal(t, 1, workshops[0].ID)
	}
}

func TestWorkshopQuery_PropagatesLookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCached := workshopMocks.NewMockCached(ctrl)
	mockCached.EXPECT().
		ListActive(gomock.Any()).
		Return(nil, failure.ExternalLookupError)

	query := service.NewQuery(mockCached, cache.NewMemoryCache(mocks.NewOtel()), mocks.NewOtel())

	_, err := query.GetAll(context.Background())

	assert.ErrorIs(t, err, failure.ExternalLookupError)
	assert.Equal(t, 502, failure.GetCode(err))
}
