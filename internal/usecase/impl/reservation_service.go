package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"rescue/config"
	"rescue/internal/clock"
	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	"rescue/internal/domain/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type reservationService struct {
	txManager       repository.TransactionManager
	reservationRepo repository.ReservationRepository
	index           service.SpatialIndex
	eventBus        service.EventBus
	locker          service.OfferLocker
	clock           clock.Clock
	maxRetries      int
	retryBackoff    time.Duration
	logger          *slog.Logger
}

// ReservationServiceParams holds dependencies for ReservationService, injected by Fx.
type ReservationServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	ReservationRepo repository.ReservationRepository
	Index           service.SpatialIndex
	EventBus        service.EventBus
	Locker          service.OfferLocker
	Clock           clock.Clock
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReservationService creates a new reservation coordinator
func NewReservationService(params ReservationServiceParams) usecase.ReservationUsecase {
	marketplace := params.Config.Marketplace.WithDefaults()

	return &reservationService{
		txManager:       params.TxManager,
		reservationRepo: params.ReservationRepo,
		index:           params.Index,
		eventBus:        params.EventBus,
		locker:          params.Locker,
		clock:           params.Clock,
		maxRetries:      marketplace.ReserveMaxRetries,
		retryBackoff:    marketplace.ReserveRetryBackoff,
		logger:          params.Logger,
	}
}

func (srv *reservationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type reserveOutcome struct {
	reservation *entity.Reservation
	offer       *entity.Offer
}

// Reserve runs the check-and-decrement transaction, retrying transient failures
func (srv *reservationService) Reserve(ctx context.Context, clientID, offerID uuid.UUID, quantity int) (*usecase.ReservationResult, error) {
	logger := srv.log(ctx).With(
		slog.String("offerId", offerID.String()),
		slog.String("clientId", clientID.String()),
		slog.Int("quantity", quantity),
	)

	attempts := srv.maxRetries + 1
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		outcome, err := srv.tryReserve(ctx, clientID, offerID, quantity)
		if err == nil {
			logger.InfoContext(ctx, "Reservation created",
				slog.String("reservationId", outcome.reservation.ID.String()),
				slog.Int("remaining", outcome.offer.Quantity),
			)
			srv.announceReservation(ctx, outcome)

			return &usecase.ReservationResult{
				Reservation: outcome.reservation,
				NewQuantity: outcome.offer.Quantity,
			}, nil
		}

		if domainerrors.IsClientError(err) {
			logger.InfoContext(ctx, "Reservation rejected", slog.Any("reason", err))

			return nil, err
		}

		lastErr = err
		if ctx.Err() != nil {
			break
		}

		logger.WarnContext(ctx, "Reservation attempt failed",
			slog.Int("attempt", attempt),
			slog.Any("error", err),
		)

		if attempt < attempts && !sleepContext(ctx, srv.retryBackoff*time.Duration(attempt)) {
			break
		}
	}

	logger.ErrorContext(ctx, "Reservation failed after retries", slog.Any("error", lastErr))

	return nil, domainerrors.ErrReservationUnavailable.WrapMessage("reservation retries exhausted")
}

func (srv *reservationService) tryReserve(ctx context.Context, clientID, offerID uuid.UUID, quantity int) (*reserveOutcome, error) {
	unlock, err := lockOffer(ctx, srv.locker, offerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := srv.clock.Now()
	var outcome *reserveOutcome
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		offer, err := offerRepo.FindOfferByIDForUpdate(ctx, offerID)
		if err != nil {
			return mapOfferError(err)
		}
		if err := checkStock(offer, quantity, now); err != nil {
			return err
		}

		remaining, err := offerRepo.DecrementQuantity(ctx, offerID, quantity)
		if err != nil {
			return mapOfferError(err)
		}

		reservation := &entity.Reservation{
			OfferID:    offerID,
			ClientID:   clientID,
			MerchantID: offer.MerchantID,
			Quantity:   quantity,
			Status:     entity.ReservationStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := repoFactory.NewReservationRepository().CreateReservation(ctx, reservation); err != nil {
			return errors.Wrap(err, "failed to create reservation")
		}

		offer.Quantity = remaining
		offer.UpdatedAt = now
		outcome = &reserveOutcome{reservation: reservation, offer: offer}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcome, nil
}

// announceReservation publishes the post-commit side effects. None of them can fail the reservation.
func (srv *reservationService) announceReservation(ctx context.Context, outcome *reserveOutcome) {
	now := srv.clock.Now()
	reservation := outcome.reservation
	offer := outcome.offer
	merchantID := offer.MerchantID
	requestID := deliverycontext.GetRequestIDFromContext(ctx)

	events := []*entity.DomainEvent{
		{
			ID:          uuid.New(),
			Type:        entity.EventTypeReservationCreated,
			RecipientID: merchantID,
			MerchantID:  merchantID,
			Payload: &entity.ReservationEventPayload{
				Reservation:       reservation,
				OfferTitle:        offer.Title,
				RemainingQuantity: offer.Quantity,
			},
			OccurredAt: now,
			RequestID:  requestID,
		},
		newNotificationEvent(ctx, &entity.Notification{
			RecipientID: reservation.ClientID,
			SenderID:    &merchantID,
			Title:       "Reservation confirmed",
			Message:     fmt.Sprintf("%d x %s reserved. Pick it up before %s.", reservation.Quantity, offer.Title, offer.AvailableUntil.Format(time.Kitchen)),
			Type:        entity.NotificationTypeReservation,
			OfferID:     &offer.ID,
			CreatedAt:   now,
		}, now),
		newOfferEvent(ctx, entity.EventTypeOfferUpdated, offer, indexedLocation(srv.index, merchantID), now),
	}

	if offer.Quantity == 0 {
		events = append(events, newNotificationEvent(ctx, &entity.Notification{
			RecipientID: merchantID,
			Title:       "Sold out",
			Message:     fmt.Sprintf("%s has no items left.", offer.Title),
			Type:        entity.NotificationTypeStockEmpty,
			OfferID:     &offer.ID,
			CreatedAt:   now,
		}, now))
	}

	publishEvents(ctx, srv.eventBus, srv.log(ctx), events...)
}

// ListClientReservations returns the client's reservations
func (srv *reservationService) ListClientReservations(ctx context.Context, clientID uuid.UUID) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindReservationsByClient(ctx, clientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by client")
	}

	return reservations, nil
}

// ListMerchantReservations returns reservations against the merchant's offers
func (srv *reservationService) ListMerchantReservations(ctx context.Context, merchantID uuid.UUID) ([]*entity.Reservation, error) {
	reservations, err := srv.reservationRepo.FindReservationsByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find reservations by merchant")
	}

	return reservations, nil
}

// CompleteReservation validates a pickup
func (srv *reservationService) CompleteReservation(ctx context.Context, merchantID, reservationID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if reservation.MerchantID != merchantID {
		return nil, domainerrors.ErrForbidden.WithDetails("reservation belongs to another merchant")
	}

	return srv.transition(ctx, reservation, entity.ReservationStatusCompleted)
}

// CancelReservation cancels a pending reservation and tells the other party. Stock is not restored.
func (srv *reservationService) CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.IsParty(userID) {
		return nil, domainerrors.ErrForbidden.WithDetails("not a party of this reservation")
	}

	cancelled, err := srv.transition(ctx, reservation, entity.ReservationStatusCancelled)
	if err != nil {
		return nil, err
	}

	counterpart := cancelled.MerchantID
	if userID == cancelled.MerchantID {
		counterpart = cancelled.ClientID
	}
	sender := userID
	now := srv.clock.Now()
	publishEvents(ctx, srv.eventBus, srv.log(ctx), newNotificationEvent(ctx, &entity.Notification{
		RecipientID: counterpart,
		SenderID:    &sender,
		Title:       "Reservation cancelled",
		Message:     fmt.Sprintf("Reservation of %d item(s) was cancelled.", cancelled.Quantity),
		Type:        entity.NotificationTypeReservation,
		OfferID:     &cancelled.OfferID,
		CreatedAt:   now,
	}, now))

	return cancelled, nil
}

// ArchiveReservation archives a finished reservation
func (srv *reservationService) ArchiveReservation(ctx context.Context, userID, reservationID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.findReservation(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if !reservation.IsParty(userID) {
		return nil, domainerrors.ErrForbidden.WithDetails("not a party of this reservation")
	}

	return srv.transition(ctx, reservation, entity.ReservationStatusArchived)
}

// ExpireReservations expires pending reservations on ended offers
func (srv *reservationService) ExpireReservations(ctx context.Context) (int64, error) {
	count, err := srv.reservationRepo.ExpirePendingReservations(ctx, srv.clock.Now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to expire pending reservations")
	}

	if count > 0 {
		srv.log(ctx).InfoContext(ctx, "Expired pending reservations", slog.Int64("count", count))
	}

	return count, nil
}

func (srv *reservationService) findReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Reservation, error) {
	reservation, err := srv.reservationRepo.FindReservationByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return nil, domainerrors.ErrReservationNotFound
		}

		return nil, errors.Wrap(err, "failed to find reservation by ID")
	}

	return reservation, nil
}

// transition moves a reservation with a compare-and-set on its current status.
func (srv *reservationService) transition(ctx context.Context, reservation *entity.Reservation, to entity.ReservationStatus) (*entity.Reservation, error) {
	from := reservation.Status
	if !from.CanTransitionTo(to) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(fmt.Sprintf("%s -> %s", from, to))
	}

	if err := srv.reservationRepo.UpdateReservationStatus(ctx, reservation.ID, from, to); err != nil {
		switch {
		case errors.Is(err, repository.ErrReservationStatusConflict):
			return nil, domainerrors.ErrInvalidStatusTransition.WithDetails("reservation status changed concurrently")
		case errors.Is(err, repository.ErrReservationNotFound):
			return nil, domainerrors.ErrReservationNotFound
		default:
			return nil, errors.Wrap(err, "failed to update reservation status")
		}
	}

	reservation.Status = to
	reservation.UpdatedAt = srv.clock.Now()

	srv.log(ctx).InfoContext(ctx, "Reservation status changed",
		slog.String("reservationId", reservation.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", to.String()),
	)

	return reservation, nil
}

// lockOffer takes the in-process offer lock. A timeout is reported as a retryable 503.
func lockOffer(ctx context.Context, locker service.OfferLocker, offerID uuid.UUID) (func(), error) {
	unlock, err := locker.Lock(ctx, offerID)
	if err != nil {
		return nil, errors.WithMessage(domainerrors.ErrReservationUnavailable.WithDetails(err.Error()), "failed to acquire offer lock")
	}

	return unlock, nil
}

// sleepContext waits for d and reports false if ctx ended first.
func sleepContext(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
