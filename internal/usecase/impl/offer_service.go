package impl

import (
	"context"
	"log/slog"
	"strings"
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

type offerService struct {
	txManager    repository.TransactionManager
	offerRepo    repository.OfferRepository
	merchantRepo repository.MerchantRepository
	index        service.SpatialIndex
	eventBus     service.EventBus
	locker       service.OfferLocker
	clock        clock.Clock
	logger       *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OfferRepo    repository.OfferRepository
	MerchantRepo repository.MerchantRepository
	Index        service.SpatialIndex
	EventBus     service.EventBus
	Locker       service.OfferLocker
	Clock        clock.Clock
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOfferService creates a new offer catalog service
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	return &offerService{
		txManager:    params.TxManager,
		offerRepo:    params.OfferRepo,
		merchantRepo: params.MerchantRepo,
		index:        params.Index,
		eventBus:     params.EventBus,
		locker:       params.Locker,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer validates and stores a new active offer
func (srv *offerService) CreateOffer(ctx context.Context, merchantID uuid.UUID, input *usecase.OfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	if _, err := srv.merchantRepo.FindMerchantByID(ctx, merchantID); err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	now := srv.clock.Now()
	offer := &entity.Offer{
		MerchantID: merchantID,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	applyOfferInput(offer, input)

	if err := srv.offerRepo.CreateOffer(ctx, offer); err != nil {
		return nil, errors.Wrap(err, "failed to create offer")
	}

	srv.log(ctx).InfoContext(ctx, "Offer created",
		slog.String("offerId", offer.ID.String()),
		slog.String("merchantId", merchantID.String()),
		slog.Int("quantity", offer.Quantity),
	)

	publishEvents(ctx, srv.eventBus, srv.log(ctx),
		newOfferEvent(ctx, entity.EventTypeOfferCreated, offer, indexedLocation(srv.index, merchantID), now))

	return offer, nil
}

// UpdateOffer replaces the editable fields of an owned offer under the offer lock
func (srv *offerService) UpdateOffer(ctx context.Context, merchantID, offerID uuid.UUID, input *usecase.OfferInput) (*entity.Offer, error) {
	if err := validateOfferInput(input); err != nil {
		return nil, err
	}

	unlock, err := lockOffer(ctx, srv.locker, offerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := srv.clock.Now()
	var updated *entity.Offer
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		offer, err := findOwnedOffer(ctx, offerRepo.FindOfferByIDForUpdate, merchantID, offerID)
		if err != nil {
			return err
		}

		applyOfferInput(offer, input)
		offer.UpdatedAt = now

		if err := offerRepo.UpdateOffer(ctx, offer); err != nil {
			return errors.Wrap(err, "failed to update offer")
		}
		updated = offer

		return nil
	})
	if err != nil {
		return nil, err
	}

	publishEvents(ctx, srv.eventBus, srv.log(ctx),
		newOfferEvent(ctx, entity.EventTypeOfferUpdated, updated, indexedLocation(srv.index, merchantID), now))

	return updated, nil
}

// GetOffer returns a non-deleted offer
func (srv *offerService) GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindOfferByID(ctx, offerID)
	if err != nil {
		return nil, mapOfferError(err)
	}

	return offer, nil
}

// ListMerchantOffers returns every non-deleted offer of the merchant
func (srv *offerService) ListMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]*entity.Offer, error) {
	offers, err := srv.offerRepo.FindOffersByMerchant(ctx, merchantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find offers by merchant")
	}

	return offers, nil
}

// ListActiveMerchantOffers returns the merchant's effectively available offers
func (srv *offerService) ListActiveMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]*entity.Offer, error) {
	now := srv.clock.Now()
	offers, err := srv.offerRepo.FindAvailableOffersByMerchants(ctx, []uuid.UUID{merchantID}, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find available offers by merchant")
	}

	active := make([]*entity.Offer, 0, len(offers))
	for _, offer := range offers {
		if offer.IsEffectivelyAvailable(now) {
			active = append(active, offer)
		}
	}

	return active, nil
}

// SetOfferActive toggles an owned offer
func (srv *offerService) SetOfferActive(ctx context.Context, merchantID, offerID uuid.UUID, active bool) (*entity.Offer, error) {
	offer, err := findOwnedOffer(ctx, srv.offerRepo.FindOfferByID, merchantID, offerID)
	if err != nil {
		return nil, err
	}

	if err := srv.offerRepo.SetOfferActive(ctx, offerID, active); err != nil {
		return nil, mapOfferError(err)
	}

	now := srv.clock.Now()
	offer.IsActive = active
	offer.UpdatedAt = now

	srv.log(ctx).InfoContext(ctx, "Offer status changed",
		slog.String("offerId", offerID.String()),
		slog.Bool("active", active),
	)

	publishEvents(ctx, srv.eventBus, srv.log(ctx),
		newOfferEvent(ctx, entity.EventTypeOfferUpdated, offer, indexedLocation(srv.index, merchantID), now))

	return offer, nil
}

// DeleteOffer soft-deletes an owned offer
func (srv *offerService) DeleteOffer(ctx context.Context, merchantID, offerID uuid.UUID) error {
	offer, err := findOwnedOffer(ctx, srv.offerRepo.FindOfferByID, merchantID, offerID)
	if err != nil {
		return err
	}

	if err := srv.offerRepo.SoftDeleteOffer(ctx, offerID); err != nil {
		return mapOfferError(err)
	}

	now := srv.clock.Now()
	offer.IsDeleted = true
	offer.UpdatedAt = now

	srv.log(ctx).InfoContext(ctx, "Offer deleted", slog.String("offerId", offerID.String()))

	publishEvents(ctx, srv.eventBus, srv.log(ctx),
		newOfferEvent(ctx, entity.EventTypeOfferUpdated, offer, indexedLocation(srv.index, merchantID), now))

	return nil
}

// RecordSale decrements stock for an in-store sale
func (srv *offerService) RecordSale(ctx context.Context, merchantID, offerID uuid.UUID, quantity int) (*entity.Offer, error) {
	unlock, err := lockOffer(ctx, srv.locker, offerID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	now := srv.clock.Now()
	var sold *entity.Offer
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		offerRepo := repoFactory.NewOfferRepository()

		offer, err := findOwnedOffer(ctx, offerRepo.FindOfferByIDForUpdate, merchantID, offerID)
		if err != nil {
			return err
		}
		if err := checkStock(offer, quantity, now); err != nil {
			return err
		}

		remaining, err := offerRepo.DecrementQuantity(ctx, offerID, quantity)
		if err != nil {
			return mapOfferError(err)
		}

		offer.Quantity = remaining
		offer.UpdatedAt = now
		sold = offer

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "In-store sale recorded",
		slog.String("offerId", offerID.String()),
		slog.Int("quantity", quantity),
		slog.Int("remaining", sold.Quantity),
	)

	publishEvents(ctx, srv.eventBus, srv.log(ctx),
		newOfferEvent(ctx, entity.EventTypeOfferUpdated, sold, indexedLocation(srv.index, merchantID), now))

	return sold, nil
}

// ExpireOffers deactivates ended offers and announces each one
func (srv *offerService) ExpireOffers(ctx context.Context) (int, error) {
	now := srv.clock.Now()
	expired, err := srv.offerRepo.DeactivateEndedOffers(ctx, now)
	if err != nil {
		return 0, errors.Wrap(err, "failed to deactivate ended offers")
	}

	events := make([]*entity.DomainEvent, 0, len(expired))
	for _, offer := range expired {
		events = append(events, newOfferEvent(ctx, entity.EventTypeOfferExpired, offer, indexedLocation(srv.index, offer.MerchantID), now))
	}
	publishEvents(ctx, srv.eventBus, srv.log(ctx), events...)

	if len(expired) > 0 {
		srv.log(ctx).InfoContext(ctx, "Expired ended offers", slog.Int("count", len(expired)))
	}

	return len(expired), nil
}

func validateOfferInput(input *usecase.OfferInput) error {
	if input == nil {
		return domainerrors.ErrValidationFailed.WithDetails("offer input is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if input.Quantity < 0 {
		return domainerrors.ErrInvalidQuantity.WithDetails("quantity cannot be negative")
	}

	candidate := entity.Offer{
		PriceBefore:    input.PriceBefore,
		PriceAfter:     input.PriceAfter,
		AvailableFrom:  input.AvailableFrom,
		AvailableUntil: input.AvailableUntil,
	}
	if !candidate.HasValidPricing() {
		return domainerrors.ErrInvalidPricing
	}
	if !candidate.HasValidWindow() {
		return domainerrors.ErrInvalidWindow
	}

	return nil
}

func applyOfferInput(offer *entity.Offer, input *usecase.OfferInput) {
	offer.Title = strings.TrimSpace(input.Title)
	offer.Description = input.Description
	offer.ImageURL = input.ImageURL
	offer.PriceBefore = input.PriceBefore
	offer.PriceAfter = input.PriceAfter
	offer.Quantity = input.Quantity
	offer.AvailableFrom = input.AvailableFrom.UTC()
	offer.AvailableUntil = input.AvailableUntil.UTC()
}

// findOwnedOffer loads an offer with find and checks that merchantID owns it.
func findOwnedOffer(
	ctx context.Context,
	find func(context.Context, uuid.UUID) (*entity.Offer, error),
	merchantID, offerID uuid.UUID,
) (*entity.Offer, error) {
	offer, err := find(ctx, offerID)
	if err != nil {
		return nil, mapOfferError(err)
	}
	if offer.MerchantID != merchantID {
		return nil, domainerrors.ErrForbidden.WithDetails("offer belongs to another merchant")
	}

	return offer, nil
}

// checkStock applies the availability rules shared by reservations and in-store sales, in order.
func checkStock(offer *entity.Offer, quantity int, now time.Time) error {
	if !offer.IsEffectivelyAvailable(now) {
		return domainerrors.ErrOfferNotAvailable
	}
	if quantity < 1 {
		return domainerrors.ErrInvalidQuantity
	}
	if quantity > offer.Quantity {
		return domainerrors.ErrInsufficientStock
	}

	return nil
}

func mapOfferError(err error) error {
	switch {
	case errors.Is(err, repository.ErrOfferNotFound):
		return domainerrors.ErrOfferNotFound
	case errors.Is(err, repository.ErrInsufficientStock):
		return domainerrors.ErrInsufficientStock
	default:
		return errors.Wrap(err, "offer persistence failed")
	}
}
