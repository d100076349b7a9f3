package impl

import (
	"context"
	"testing"
	"time"

	"rescue/internal/clock"
	"rescue/internal/domain/constants"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"
	"rescue/internal/infra/spatial"
	mockRepo "rescue/internal/mocks/repository"
	mockSvc "rescue/internal/mocks/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// searchServiceFixtures holds all test dependencies for search service tests.
type searchServiceFixtures struct {
	service      usecase.SearchUsecase
	offerRepo    *mockRepo.MockOfferRepository
	merchantRepo *mockRepo.MockMerchantRepository
	index        *mockSvc.MockSpatialIndex
}

func createTestSearchService(t *testing.T) searchServiceFixtures {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	index := mockSvc.NewMockSpatialIndex(t)

	srv := NewSearchService(SearchServiceParams{
		OfferRepo:    offerRepo,
		MerchantRepo: merchantRepo,
		Index:        index,
		Clock:        clock.NewFixed(testNow),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return searchServiceFixtures{
		service:      srv,
		offerRepo:    offerRepo,
		merchantRepo: merchantRepo,
		index:        index,
	}
}

func radiusPtr(meters float64) *float64 {
	return &meters
}

var testCenter = entity.GeoPoint{Lat: 48.8566, Lng: 2.3522}

func TestSearchService_Nearby_SortsByDistanceThenTieBreakers(t *testing.T) {
	fx := createTestSearchService(t)

	near := &entity.Merchant{ID: uuid.New(), Name: "Near", IsActive: true}
	far := &entity.Merchant{ID: uuid.New(), Name: "Far", IsActive: true}

	farOffer := newAvailableOffer(far.ID, 2)
	endsLater := newAvailableOffer(near.ID, 1)
	endsLater.AvailableUntil = testNow.Add(3 * time.Hour)
	endsSooner := newAvailableOffer(near.ID, 1)
	endsSooner.AvailableUntil = testNow.Add(30 * time.Minute)
	older := newAvailableOffer(near.ID, 1)
	older.AvailableUntil = endsLater.AvailableUntil
	older.CreatedAt = endsLater.CreatedAt.Add(-time.Hour)

	fx.index.EXPECT().Query(testCenter, 5000.0).Return([]service.SpatialMatch{
		{MerchantID: near.ID, DistanceMeters: 120},
		{MerchantID: far.ID, DistanceMeters: 900},
	}, nil)
	fx.offerRepo.EXPECT().
		FindAvailableOffersByMerchants(mock.Anything, []uuid.UUID{near.ID, far.ID}, testNow).
		Return([]*entity.Offer{farOffer, older, endsLater, endsSooner}, nil)
	fx.merchantRepo.EXPECT().
		FindMerchantsByIDs(mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.Merchant{near, far}, nil)

	results, err := fx.service.SearchOffers(context.Background(), &usecase.SearchInput{Center: testCenter})
	require.NoError(t, err)
	require.Len(t, results, 4)

	assert.Equal(t, endsSooner.ID, results[0].Offer.ID)
	assert.Equal(t, endsLater.ID, results[1].Offer.ID)
	assert.Equal(t, older.ID, results[2].Offer.ID)
	assert.Equal(t, farOffer.ID, results[3].Offer.ID)

	assert.Equal(t, 120.0, results[0].DistanceMeters)
	assert.Equal(t, 900.0, results[3].DistanceMeters)
	assert.Equal(t, 60, results[0].DiscountPercent)
	assert.Equal(t, near, results[0].Merchant)
}

func TestSearchService_Nearby_ClampsRadius(t *testing.T) {
	fx := createTestSearchService(t)

	fx.index.EXPECT().Query(testCenter, 50000.0).Return(nil, nil)

	results, err := fx.service.SearchOffers(context.Background(), &usecase.SearchInput{
		Center:       testCenter,
		RadiusMeters: radiusPtr(250000),
		Mode:         constants.SearchModeNearby,
	})
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearchService_Nearby_InvalidRadius(t *testing.T) {
	fx := createTestSearchService(t)

	for _, r := range []float64{0, -10} {
		_, err := fx.service.SearchOffers(context.Background(), &usecase.SearchInput{Center: testCenter, RadiusMeters: radiusPtr(r)})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRadius)
	}
}

func TestSearchService_InvalidInput(t *testing.T) {
	fx := createTestSearchService(t)

	_, err := fx.service.SearchOffers(context.Background(), &usecase.SearchInput{Center: entity.GeoPoint{Lat: 91, Lng: 0}})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidPoint)

	_, err = fx.service.SearchOffers(context.Background(), &usecase.SearchInput{Center: testCenter, Mode: "everywhere"})
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_SEARCH_MODE", appErr.ErrorCode())

	_, err = fx.service.SearchOffers(context.Background(), nil)
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestSearchService_All_IgnoresRadiusAndOrdersByNewest(t *testing.T) {
	fx := createTestSearchService(t)

	merchant := &entity.Merchant{ID: uuid.New(), IsActive: true}
	oldest := newAvailableOffer(merchant.ID, 1)
	newest := newAvailableOffer(merchant.ID, 1)
	newest.CreatedAt = oldest.CreatedAt.Add(time.Hour)

	fx.index.EXPECT().Query(testCenter, 2000000.0).Return([]service.SpatialMatch{
		{MerchantID: merchant.ID, DistanceMeters: 1500000},
	}, nil)
	fx.offerRepo.EXPECT().
		FindRecentAvailableOffersByMerchants(mock.Anything, []uuid.UUID{merchant.ID}, testNow, 100).
		Return([]*entity.Offer{oldest, newest}, nil)
	fx.merchantRepo.EXPECT().
		FindMerchantsByIDs(mock.Anything, []uuid.UUID{merchant.ID}).
		Return([]*entity.Merchant{merchant}, nil)

	results, err := fx.service.SearchOffers(context.Background(), &usecase.SearchInput{
		Center:       testCenter,
		RadiusMeters: radiusPtr(-1),
		Mode:         constants.SearchModeAll,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, newest.ID, results[0].Offer.ID)
	assert.Equal(t, oldest.ID, results[1].Offer.ID)
}

func TestSearchService_SkipsStaleRowsAndInactiveMerchants(t *testing.T) {
	fx := createTestSearchService(t)

	active := &entity.Merchant{ID: uuid.New(), IsActive: true}
	inactive := &entity.Merchant{ID: uuid.New(), IsActive: false}

	soldOut := newAvailableOffer(active.ID, 0)
	visible := newAvailableOffer(active.ID, 3)
	hidden := newAvailableOffer(inactive.ID, 3)

	fx.index.EXPECT().Query(testCenter, 1000.0).Return([]service.SpatialMatch{
		{MerchantID: active.ID, DistanceMeters: 10},
		{MerchantID: inactive.ID, DistanceMeters: 20},
	}, nil)
	fx.offerRepo.EXPECT().
		FindAvailableOffersByMerchants(mock.Anything, mock.Anything, testNow).
		Return([]*entity.Offer{soldOut, visible, hidden}, nil)
	fx.merchantRepo.EXPECT().
		FindMerchantsByIDs(mock.Anything, mock.Anything).
		Return([]*entity.Merchant{active, inactive}, nil)

	results, err := fx.service.SearchOffers(context.Background(), &usecase.SearchInput{Center: testCenter, RadiusMeters: radiusPtr(1000)})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, visible.ID, results[0].Offer.ID)
}

func TestSearchService_RepositoryError(t *testing.T) {
	fx := createTestSearchService(t)

	merchantID := uuid.New()
	fx.index.EXPECT().Query(testCenter, 5000.0).Return([]service.SpatialMatch{{MerchantID: merchantID, DistanceMeters: 1}}, nil)
	fx.offerRepo.EXPECT().
		FindAvailableOffersByMerchants(mock.Anything, mock.Anything, testNow).
		Return(nil, errors.New("db error"))

	results, err := fx.service.SearchOffers(context.Background(), &usecase.SearchInput{Center: testCenter})
	assert.Nil(t, results)
	assert.Contains(t, err.Error(), "failed to find available offers")
}

func TestSearchService_Nearby_RepeatedSearchIsStable(t *testing.T) {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	merchantRepo := mockRepo.NewMockMerchantRepository(t)
	index := spatial.NewGridIndex(2.0)

	center := entity.GeoPoint{Lat: 48.85, Lng: 2.35}
	near := &entity.Merchant{ID: uuid.New(), Name: "Boulangerie", IsActive: true}
	mid := &entity.Merchant{ID: uuid.New(), Name: "Epicerie", IsActive: true}
	far := &entity.Merchant{ID: uuid.New(), Name: "Traiteur", IsActive: true}
	for merchant, meters := range map[*entity.Merchant]float64{near: 1_200, mid: 4_800, far: 6_000} {
		p := geo.PointAtBearingAndDistance(center.Point(), 45, meters)
		require.NoError(t, index.Upsert(merchant.ID, entity.GeoPoint{Lat: p.Lat(), Lng: p.Lon()}))
	}

	nearOffer := newAvailableOffer(near.ID, 4)
	midOffer := newAvailableOffer(mid.ID, 2)

	offerRepo.EXPECT().
		FindAvailableOffersByMerchants(mock.Anything, []uuid.UUID{near.ID, mid.ID}, testNow).
		Return([]*entity.Offer{midOffer, nearOffer}, nil).
		Times(2)
	merchantRepo.EXPECT().
		FindMerchantsByIDs(mock.Anything, mock.AnythingOfType("[]uuid.UUID")).
		Return([]*entity.Merchant{mid, near}, nil).
		Times(2)

	srv := NewSearchService(SearchServiceParams{
		OfferRepo:    offerRepo,
		MerchantRepo: merchantRepo,
		Index:        index,
		Clock:        clock.NewFixed(testNow),
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	input := &usecase.SearchInput{Center: center, RadiusMeters: radiusPtr(5_000), Mode: constants.SearchModeNearby}

	first, err := srv.SearchOffers(context.Background(), input)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, nearOffer.ID, first[0].Offer.ID)
	assert.InDelta(t, 1_200, first[0].DistanceMeters, 1)
	assert.Equal(t, midOffer.ID, first[1].Offer.ID)
	assert.InDelta(t, 4_800, first[1].DistanceMeters, 1)

	second, err := srv.SearchOffers(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
