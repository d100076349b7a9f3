// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for offer persistence.
var (
	// ErrOfferNotFound is returned when an offer is not found or has been soft-deleted.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrInsufficientStock is returned when a guarded decrement matches no row.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// OfferRepository defines the interface for offer-related database operations.
type OfferRepository interface {
	// CreateOffer persists a new offer.
	CreateOffer(ctx context.Context, offer *entity.Offer) error

	// FindOfferByID retrieves a non-deleted offer by its unique ID.
	FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindOfferByIDForUpdate retrieves an offer and locks its row until the surrounding transaction ends.
	FindOfferByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindOffersByMerchant retrieves all non-deleted offers owned by a merchant, newest first.
	FindOffersByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Offer, error)

	// FindAvailableOffersByMerchants retrieves effectively available offers of the given merchants at now.
	FindAvailableOffersByMerchants(ctx context.Context, merchantIDs []uuid.UUID, now time.Time) ([]*entity.Offer, error)

	// FindRecentAvailableOffersByMerchants is like FindAvailableOffersByMerchants but ordered by
	// creation time descending and capped to limit rows.
	FindRecentAvailableOffersByMerchants(ctx context.Context, merchantIDs []uuid.UUID, now time.Time, limit int) ([]*entity.Offer, error)

	// UpdateOffer persists the mutable fields of an offer.
	UpdateOffer(ctx context.Context, offer *entity.Offer) error

	// SetOfferActive toggles the is_active flag.
	SetOfferActive(ctx context.Context, id uuid.UUID, active bool) error

	// SoftDeleteOffer marks an offer as deleted. Existing reservations keep their reference.
	SoftDeleteOffer(ctx context.Context, id uuid.UUID) error

	// DecrementQuantity subtracts amount from the stock only when enough remains and
	// returns the new quantity. Returns ErrInsufficientStock otherwise.
	DecrementQuantity(ctx context.Context, id uuid.UUID, amount int) (int, error)

	// DeactivateEndedOffers switches off active offers whose window closed before now
	// and returns the offers that were switched off.
	DeactivateEndedOffers(ctx context.Context, now time.Time) ([]*entity.Offer, error)
}
