package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"rescue/internal/clock"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	"rescue/internal/infra/locks"
	mockRepo "rescue/internal/mocks/repository"
	mockSvc "rescue/internal/mocks/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reservationServiceFixtures holds all test dependencies for reservation service tests.
type reservationServiceFixtures struct {
	service         usecase.ReservationUsecase
	txManager       *mockRepo.MockTransactionManager
	reservationRepo *mockRepo.MockReservationRepository
	index           *mockSvc.MockSpatialIndex
	eventBus        *mockSvc.MockEventBus
	locker          *mockSvc.MockOfferLocker
}

func createTestReservationService(t *testing.T) reservationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	reservationRepo := mockRepo.NewMockReservationRepository(t)
	index := mockSvc.NewMockSpatialIndex(t)
	eventBus := mockSvc.NewMockEventBus(t)
	locker := mockSvc.NewMockOfferLocker(t)

	srv := NewReservationService(ReservationServiceParams{
		TxManager:       txManager,
		ReservationRepo: reservationRepo,
		Index:           index,
		EventBus:        eventBus,
		Locker:          locker,
		Clock:           clock.NewFixed(testNow),
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return reservationServiceFixtures{
		service:         srv,
		txManager:       txManager,
		reservationRepo: reservationRepo,
		index:           index,
		eventBus:        eventBus,
		locker:          locker,
	}
}

// onExecute expects one transaction and runs fn against a factory prepared by setup.
func (fx reservationServiceFixtures) onExecute(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			setup(factory)

			return fn(factory)
		}).
		Once()
}

func (fx reservationServiceFixtures) allowLock(offerID uuid.UUID) {
	fx.locker.EXPECT().Lock(mock.Anything, offerID).Return(func() {}, nil)
}

func TestReservationService_Reserve_Success(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	clientID := uuid.New()
	offer := newAvailableOffer(uuid.New(), 3)
	reservationID := uuid.New()

	fx.allowLock(offer.ID)
	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		reservationRepo := mockRepo.NewMockReservationRepository(t)

		factory.EXPECT().NewOfferRepository().Return(offerRepo)
		factory.EXPECT().NewReservationRepository().Return(reservationRepo)
		offerRepo.EXPECT().FindOfferByIDForUpdate(ctx, offer.ID).Return(offer, nil)
		offerRepo.EXPECT().DecrementQuantity(ctx, offer.ID, 2).Return(1, nil)
		reservationRepo.EXPECT().
			CreateReservation(ctx, mock.AnythingOfType("*entity.Reservation")).
			Run(func(_ context.Context, reservation *entity.Reservation) {
				reservation.ID = reservationID
			}).
			Return(nil)
	})

	fx.index.EXPECT().Location(offer.MerchantID).Return(testCenter, true)
	fx.eventBus.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *entity.DomainEvent) bool {
			payload, ok := event.Payload.(*entity.ReservationEventPayload)

			return event.Type == entity.EventTypeReservationCreated &&
				event.RecipientID == offer.MerchantID &&
				ok && payload.RemainingQuantity == 1
		})).
		Return(nil).Once()
	fx.eventBus.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *entity.DomainEvent) bool {
			return event.Type == entity.EventTypeNotification && event.RecipientID == clientID
		})).
		Return(nil).Once()
	fx.eventBus.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *entity.DomainEvent) bool {
			payload, ok := event.Payload.(*entity.OfferEventPayload)

			return event.Type == entity.EventTypeOfferUpdated &&
				event.Location != nil && *event.Location == testCenter &&
				ok && payload.Offer.Quantity == 1
		})).
		Return(nil).Once()

	result, err := fx.service.Reserve(ctx, clientID, offer.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, result.NewQuantity)
	assert.Equal(t, reservationID, result.Reservation.ID)
	assert.Equal(t, entity.ReservationStatusPending, result.Reservation.Status)
	assert.Equal(t, offer.MerchantID, result.Reservation.MerchantID)
	assert.Equal(t, clientID, result.Reservation.ClientID)
	assert.Equal(t, 2, result.Reservation.Quantity)
}

func TestReservationService_Reserve_LastUnitNotifiesStockEmpty(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	offer := newAvailableOffer(uuid.New(), 1)

	fx.allowLock(offer.ID)
	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		reservationRepo := mockRepo.NewMockReservationRepository(t)

		factory.EXPECT().NewOfferRepository().Return(offerRepo)
		factory.EXPECT().NewReservationRepository().Return(reservationRepo)
		offerRepo.EXPECT().FindOfferByIDForUpdate(ctx, offer.ID).Return(offer, nil)
		offerRepo.EXPECT().DecrementQuantity(ctx, offer.ID, 1).Return(0, nil)
		reservationRepo.EXPECT().CreateReservation(ctx, mock.Anything).Return(nil)
	})

	fx.index.EXPECT().Location(offer.MerchantID).Return(entity.GeoPoint{}, false)

	var published []*entity.DomainEvent
	fx.eventBus.EXPECT().
		Publish(ctx, mock.Anything).
		Run(func(_ context.Context, event *entity.DomainEvent) {
			published = append(published, event)
		}).
		Return(errors.New("event queue is full"))

	result, err := fx.service.Reserve(ctx, uuid.New(), offer.ID, 1)
	require.NoError(t, err, "publish failures never fail a reservation")
	assert.Equal(t, 0, result.NewQuantity)

	require.Len(t, published, 4)
	stockEmpty, ok := published[3].Payload.(*entity.Notification)
	require.True(t, ok)
	assert.Equal(t, entity.NotificationTypeStockEmpty, stockEmpty.Type)
	assert.Equal(t, offer.MerchantID, stockEmpty.RecipientID)
	assert.Nil(t, published[2].Location)
}

func TestReservationService_Reserve_Rejections(t *testing.T) {
	expired := newAvailableOffer(uuid.New(), 0)
	expired.AvailableUntil = testNow.Add(-time.Minute)

	expiredWithStock := newAvailableOffer(uuid.New(), 5)
	expiredWithStock.AvailableUntil = testNow.Add(-time.Second)

	inactive := newAvailableOffer(uuid.New(), 5)
	inactive.IsActive = false

	deleted := newAvailableOffer(uuid.New(), 5)
	deleted.IsDeleted = true

	tests := []struct {
		name     string
		offer    *entity.Offer
		findErr  error
		quantity int
		want     error
	}{
		{name: "offer not found", findErr: repository.ErrOfferNotFound, quantity: 1, want: domainerrors.ErrOfferNotFound},
		{name: "inactive offer", offer: inactive, quantity: 1, want: domainerrors.ErrOfferNotAvailable},
		{name: "deleted offer", offer: deleted, quantity: 1, want: domainerrors.ErrOfferNotAvailable},
		{name: "window checked before quantity", offer: expired, quantity: 0, want: domainerrors.ErrOfferNotAvailable},
		{name: "zero quantity", offer: newAvailableOffer(uuid.New(), 5), quantity: 0, want: domainerrors.ErrInvalidQuantity},
		{name: "more than remaining", offer: newAvailableOffer(uuid.New(), 3), quantity: 4, want: domainerrors.ErrInsufficientStock},
		{name: "sold out", offer: newAvailableOffer(uuid.New(), 0), quantity: 1, want: domainerrors.ErrOfferNotAvailable},
		{name: "expired with stock left", offer: expiredWithStock, quantity: 1, want: domainerrors.ErrOfferNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReservationService(t)

			ctx := context.Background()
			offerID := uuid.New()
			if tt.offer != nil {
				offerID = tt.offer.ID
			}

			fx.allowLock(offerID)
			fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
				offerRepo := mockRepo.NewMockOfferRepository(t)
				factory.EXPECT().NewOfferRepository().Return(offerRepo)
				offerRepo.EXPECT().FindOfferByIDForUpdate(ctx, offerID).Return(tt.offer, tt.findErr)
			})

			result, err := fx.service.Reserve(ctx, uuid.New(), offerID, tt.quantity)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReservationService_Reserve_GuardedDecrementLosesRace(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	offer := newAvailableOffer(uuid.New(), 2)

	fx.allowLock(offer.ID)
	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		factory.EXPECT().NewOfferRepository().Return(offerRepo)
		offerRepo.EXPECT().FindOfferByIDForUpdate(ctx, offer.ID).Return(offer, nil)
		offerRepo.EXPECT().DecrementQuantity(ctx, offer.ID, 2).Return(0, repository.ErrInsufficientStock)
	})

	_, err := fx.service.Reserve(ctx, uuid.New(), offer.ID, 2)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
}

func TestReservationService_Reserve_RetriesTransientFailure(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	offer := newAvailableOffer(uuid.New(), 5)

	fx.allowLock(offer.ID)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(errors.New("could not serialize access")).
		Once()
	fx.onExecute(t, func(factory *mockRepo.MockRepositoryFactory) {
		offerRepo := mockRepo.NewMockOfferRepository(t)
		reservationRepo := mockRepo.NewMockReservationRepository(t)

		factory.EXPECT().NewOfferRepository().Return(offerRepo)
		factory.EXPECT().NewReservationRepository().Return(reservationRepo)
		offerRepo.EXPECT().FindOfferByIDForUpdate(ctx, offer.ID).Return(offer, nil)
		offerRepo.EXPECT().DecrementQuantity(ctx, offer.ID, 1).Return(4, nil)
		reservationRepo.EXPECT().CreateReservation(ctx, mock.Anything).Return(nil)
	})
	fx.index.EXPECT().Location(offer.MerchantID).Return(testCenter, true)
	fx.eventBus.EXPECT().Publish(ctx, mock.Anything).Return(nil).Times(3)

	result, err := fx.service.Reserve(ctx, uuid.New(), offer.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, result.NewQuantity)
}

func TestReservationService_Reserve_RetriesExhausted(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	offerID := uuid.New()

	fx.allowLock(offerID)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to find offer")).
		Times(4)

	result, err := fx.service.Reserve(ctx, uuid.New(), offerID, 1)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrReservationUnavailable)
}

func TestReservationService_Reserve_LockTimeoutIsRetried(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	offerID := uuid.New()

	fx.locker.EXPECT().Lock(mock.Anything, offerID).Return(nil, locks.ErrLockTimeout).Times(4)

	_, err := fx.service.Reserve(ctx, uuid.New(), offerID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrReservationUnavailable)
}

func TestReservationService_Reserve_StopsWhenCallerGivesUp(t *testing.T) {
	fx := createTestReservationService(t)

	ctx, cancel := context.WithCancel(context.Background())
	offerID := uuid.New()

	fx.allowLock(offerID)
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, func(repository.RepositoryFactory) error) error {
			cancel()

			return context.Canceled
		}).
		Once()

	_, err := fx.service.Reserve(ctx, uuid.New(), offerID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrReservationUnavailable)
}

func TestReservationService_CompleteReservation(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	reservation := &entity.Reservation{ID: uuid.New(), MerchantID: merchantID, ClientID: uuid.New(), Status: entity.ReservationStatusPending}

	fx.reservationRepo.EXPECT().FindReservationByID(ctx, reservation.ID).Return(reservation, nil)
	fx.reservationRepo.EXPECT().
		UpdateReservationStatus(ctx, reservation.ID, entity.ReservationStatusPending, entity.ReservationStatusCompleted).
		Return(nil)

	completed, err := fx.service.CompleteReservation(ctx, merchantID, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, completed.Status)
}

func TestReservationService_CompleteReservation_OtherMerchant(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{ID: uuid.New(), MerchantID: uuid.New(), Status: entity.ReservationStatusPending}
	fx.reservationRepo.EXPECT().FindReservationByID(ctx, reservation.ID).Return(reservation, nil)

	_, err := fx.service.CompleteReservation(ctx, uuid.New(), reservation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReservationService_Transitions_Rejected(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	clientID := uuid.New()

	cancelled := &entity.Reservation{ID: uuid.New(), ClientID: clientID, MerchantID: uuid.New(), Status: entity.ReservationStatusCancelled}
	fx.reservationRepo.EXPECT().FindReservationByID(ctx, cancelled.ID).Return(cancelled, nil)

	_, err := fx.service.ArchiveReservation(ctx, clientID, cancelled.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	pending := &entity.Reservation{ID: uuid.New(), ClientID: clientID, MerchantID: uuid.New(), Status: entity.ReservationStatusPending}
	fx.reservationRepo.EXPECT().FindReservationByID(ctx, pending.ID).Return(pending, nil)
	fx.reservationRepo.EXPECT().
		UpdateReservationStatus(ctx, pending.ID, entity.ReservationStatusPending, entity.ReservationStatusCancelled).
		Return(repository.ErrReservationStatusConflict)

	_, err = fx.service.CancelReservation(ctx, clientID, pending.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)

	fx.reservationRepo.EXPECT().FindReservationByID(ctx, mock.Anything).Return(nil, repository.ErrReservationNotFound).Once()
	_, err = fx.service.CancelReservation(ctx, clientID, uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrReservationNotFound)
}

func TestReservationService_CancelReservation_NotifiesCounterpart(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	merchantID := uuid.New()
	clientID := uuid.New()
	reservation := &entity.Reservation{ID: uuid.New(), ClientID: clientID, MerchantID: merchantID, Quantity: 2, Status: entity.ReservationStatusPending}

	fx.reservationRepo.EXPECT().FindReservationByID(ctx, reservation.ID).Return(reservation, nil)
	fx.reservationRepo.EXPECT().
		UpdateReservationStatus(ctx, reservation.ID, entity.ReservationStatusPending, entity.ReservationStatusCancelled).
		Return(nil)
	fx.eventBus.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *entity.DomainEvent) bool {
			return event.Type == entity.EventTypeNotification && event.RecipientID == clientID
		})).
		Return(nil)

	cancelled, err := fx.service.CancelReservation(ctx, merchantID, reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, cancelled.Status)
}

func TestReservationService_Archive_ByStranger(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	reservation := &entity.Reservation{ID: uuid.New(), ClientID: uuid.New(), MerchantID: uuid.New(), Status: entity.ReservationStatusCompleted}
	fx.reservationRepo.EXPECT().FindReservationByID(ctx, reservation.ID).Return(reservation, nil)

	_, err := fx.service.ArchiveReservation(ctx, uuid.New(), reservation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestReservationService_ExpireReservations(t *testing.T) {
	fx := createTestReservationService(t)

	ctx := context.Background()
	fx.reservationRepo.EXPECT().ExpirePendingReservations(ctx, testNow).Return(3, nil)

	count, err := fx.service.ExpireReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

// stockStore is an in-memory offer table with the same guarded decrement as the database.
type stockStore struct {
	mu           sync.Mutex
	offer        entity.Offer
	reservations []*entity.Reservation
}

type stockTxManager struct{ store *stockStore }

func (m stockTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(stockFactory(m))
}

type stockFactory struct{ store *stockStore }

func (f stockFactory) NewOfferRepository() repository.OfferRepository {
	return &stockOfferRepo{store: f.store}
}

func (f stockFactory) NewReservationRepository() repository.ReservationRepository {
	return &stockReservationRepo{store: f.store}
}

func (f stockFactory) NewNotificationRepository() repository.NotificationRepository {
	return nil
}

type stockOfferRepo struct {
	repository.OfferRepository
	store *stockStore
}

func (r *stockOfferRepo) FindOfferByIDForUpdate(_ context.Context, _ uuid.UUID) (*entity.Offer, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	offer := r.store.offer

	return &offer, nil
}

func (r *stockOfferRepo) DecrementQuantity(_ context.Context, _ uuid.UUID, amount int) (int, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if r.store.offer.Quantity < amount {
		return 0, repository.ErrInsufficientStock
	}
	r.store.offer.Quantity -= amount

	return r.store.offer.Quantity, nil
}

type stockReservationRepo struct {
	repository.ReservationRepository
	store *stockStore
}

func (r *stockReservationRepo) CreateReservation(_ context.Context, reservation *entity.Reservation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	reservation.ID = uuid.New()
	r.store.reservations = append(r.store.reservations, reservation)

	return nil
}

func TestReservationService_Reserve_ConcurrentClientsNeverOversell(t *testing.T) {
	const (
		stock   = 10
		clients = 60
	)

	offer := newAvailableOffer(uuid.New(), stock)
	store := &stockStore{offer: *offer}

	index := mockSvc.NewMockSpatialIndex(t)
	index.EXPECT().Location(offer.MerchantID).Return(testCenter, true).Maybe()
	eventBus := mockSvc.NewMockEventBus(t)
	eventBus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	srv := NewReservationService(ReservationServiceParams{
		TxManager: stockTxManager{store: store},
		Index:     index,
		EventBus:  eventBus,
		Locker:    locks.New(5 * time.Second),
		Clock:     clock.NewFixed(testNow),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for range clients {
		wg.Add(1)
		go func() {
			defer wg.Done()

			_, err := srv.Reserve(context.Background(), uuid.New(), offer.ID, 1)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, domainerrors.ErrInsufficientStock), errors.Is(err, domainerrors.ErrOfferNotAvailable):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, stock, succeeded)
	assert.Equal(t, clients-stock, rejected)
	assert.Equal(t, 0, store.offer.Quantity)
	assert.Len(t, store.reservations, stock)
}

func TestReservationService_Reserve_TwoClientsCompeteForLastUnits(t *testing.T) {
	offer := newAvailableOffer(uuid.New(), 3)
	store := &stockStore{offer: *offer}

	index := mockSvc.NewMockSpatialIndex(t)
	index.EXPECT().Location(offer.MerchantID).Return(testCenter, true).Maybe()
	eventBus := mockSvc.NewMockEventBus(t)
	eventBus.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Maybe()

	srv := NewReservationService(ReservationServiceParams{
		TxManager: stockTxManager{store: store},
		Index:     index,
		EventBus:  eventBus,
		Locker:    locks.New(5 * time.Second),
		Clock:     clock.NewFixed(testNow),
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for idx := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[idx] = srv.Reserve(context.Background(), uuid.New(), offer.ID, 2)
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++

			continue
		}
		assert.ErrorIs(t, err, domainerrors.ErrInsufficientStock)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, store.offer.Quantity)
	assert.Len(t, store.reservations, 1)
}
