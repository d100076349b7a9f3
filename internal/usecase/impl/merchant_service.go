package impl

import (
	"context"
	"log/slog"
	"strings"

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

type merchantService struct {
	merchantRepo repository.MerchantRepository
	index        service.SpatialIndex
	clock        clock.Clock
	logger       *slog.Logger
}

// MerchantServiceParams holds dependencies for MerchantService, injected by Fx.
type MerchantServiceParams struct {
	fx.In

	MerchantRepo repository.MerchantRepository
	Index        service.SpatialIndex
	Clock        clock.Clock
	Logger       *slog.Logger
}

// NewMerchantService creates a new merchant service
func NewMerchantService(params MerchantServiceParams) usecase.MerchantUsecase {
	return &merchantService{
		merchantRepo: params.MerchantRepo,
		index:        params.Index,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

func (srv *merchantService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpsertProfile creates or updates the merchant profile. Location and activity are kept.
func (srv *merchantService) UpsertProfile(ctx context.Context, merchantID uuid.UUID, input *usecase.MerchantProfileInput) (*entity.Merchant, error) {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("merchant name is required")
	}

	now := srv.clock.Now()
	merchant, err := srv.merchantRepo.FindMerchantByID(ctx, merchantID)
	switch {
	case errors.Is(err, repository.ErrMerchantNotFound):
		merchant = &entity.Merchant{
			ID:        merchantID,
			IsActive:  true,
			CreatedAt: now,
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	merchant.Name = strings.TrimSpace(input.Name)
	merchant.Street = input.Street
	merchant.City = input.City
	merchant.PostalCode = input.PostalCode
	merchant.Phone = input.Phone
	merchant.LogoURL = input.LogoURL
	merchant.UpdatedAt = now

	if err := srv.merchantRepo.UpsertMerchant(ctx, merchant); err != nil {
		return nil, errors.Wrap(err, "failed to upsert merchant")
	}

	srv.log(ctx).InfoContext(ctx, "Merchant profile saved", slog.String("merchantId", merchantID.String()))

	return merchant, nil
}

// GetProfile returns the merchant profile
func (srv *merchantService) GetProfile(ctx context.Context, merchantID uuid.UUID) (*entity.Merchant, error) {
	merchant, err := srv.merchantRepo.FindMerchantByID(ctx, merchantID)
	if err != nil {
		if errors.Is(err, repository.ErrMerchantNotFound) {
			return nil, domainerrors.ErrMerchantNotFound
		}

		return nil, errors.Wrap(err, "failed to find merchant by ID")
	}

	return merchant, nil
}

// UpdateLocation persists resolved coordinates and refreshes the spatial index
func (srv *merchantService) UpdateLocation(ctx context.Context, merchantID uuid.UUID, location entity.GeoPoint) (*entity.Merchant, error) {
	if !location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	merchant, err := srv.GetProfile(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	if err := srv.merchantRepo.UpdateMerchantLocation(ctx, merchantID, location); err != nil {
		return nil, errors.Wrap(err, "failed to update merchant location")
	}

	merchant.Location = &location
	merchant.UpdatedAt = srv.clock.Now()

	if merchant.IsDiscoverable() {
		if err := srv.index.Upsert(merchantID, location); err != nil {
			return nil, errors.Wrap(err, "failed to index merchant location")
		}
	} else {
		srv.index.Remove(merchantID)
	}

	srv.log(ctx).InfoContext(ctx, "Merchant location updated",
		slog.String("merchantId", merchantID.String()),
		slog.Float64("lat", location.Lat),
		slog.Float64("lng", location.Lng),
	)

	return merchant, nil
}

// SetActive toggles the merchant and keeps the spatial index in step
func (srv *merchantService) SetActive(ctx context.Context, merchantID uuid.UUID, active bool) (*entity.Merchant, error) {
	merchant, err := srv.GetProfile(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	merchant.IsActive = active
	merchant.UpdatedAt = srv.clock.Now()
	if err := srv.merchantRepo.UpsertMerchant(ctx, merchant); err != nil {
		return nil, errors.Wrap(err, "failed to update merchant status")
	}

	if merchant.IsDiscoverable() {
		if err := srv.index.Upsert(merchantID, *merchant.Location); err != nil {
			return nil, errors.Wrap(err, "failed to index merchant location")
		}
	} else {
		srv.index.Remove(merchantID)
	}

	srv.log(ctx).InfoContext(ctx, "Merchant status changed",
		slog.String("merchantId", merchantID.String()),
		slog.Bool("active", active),
	)

	return merchant, nil
}

// LoadIndex rebuilds the spatial index from persisted locations
func (srv *merchantService) LoadIndex(ctx context.Context) (int, error) {
	merchants, err := srv.merchantRepo.FindLocatedMerchants(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to find located merchants")
	}

	loaded := 0
	for _, merchant := range merchants {
		if !merchant.IsDiscoverable() {
			continue
		}
		if err := srv.index.Upsert(merchant.ID, *merchant.Location); err != nil {
			srv.log(ctx).WarnContext(ctx, "Skipping merchant with invalid location",
				slog.String("merchantId", merchant.ID.String()),
				slog.Any("error", err),
			)

			continue
		}
		loaded++
	}

	srv.log(ctx).InfoContext(ctx, "Spatial index loaded",
		slog.Int("merchants", loaded),
		slog.Int("indexed", srv.index.Size()),
	)

	return loaded, nil
}
