package usecase

import (
	"context"
	"time"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// OfferInput carries the merchant-editable fields of an offer.
type OfferInput struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	PriceBefore    float64   `json:"price_before"`
	PriceAfter     float64   `json:"price_after"`
	Quantity       int       `json:"quantity"`
	AvailableFrom  time.Time `json:"available_from"`
	AvailableUntil time.Time `json:"available_until"`
}

// OfferUsecase defines the offer catalog operations
type OfferUsecase interface {
	// CreateOffer validates and stores a new active offer for the merchant
	CreateOffer(ctx context.Context, merchantID uuid.UUID, input *OfferInput) (*entity.Offer, error)

	// UpdateOffer replaces the editable fields of an offer owned by the merchant
	UpdateOffer(ctx context.Context, merchantID, offerID uuid.UUID, input *OfferInput) (*entity.Offer, error)

	// GetOffer returns a non-deleted offer
	GetOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error)

	// ListMerchantOffers returns all non-deleted offers of a merchant
	ListMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]*entity.Offer, error)

	// ListActiveMerchantOffers returns the merchant's offers that are effectively available now
	ListActiveMerchantOffers(ctx context.Context, merchantID uuid.UUID) ([]*entity.Offer, error)

	// SetOfferActive toggles an offer's visibility
	SetOfferActive(ctx context.Context, merchantID, offerID uuid.UUID, active bool) (*entity.Offer, error)

	// DeleteOffer soft-deletes an offer; existing reservations keep referencing it
	DeleteOffer(ctx context.Context, merchantID, offerID uuid.UUID) error

	// RecordSale decrements stock for an in-store sale under the same per-offer lock as reservations
	RecordSale(ctx context.Context, merchantID, offerID uuid.UUID, quantity int) (*entity.Offer, error)

	// ExpireOffers deactivates offers whose window has ended and announces them
	ExpireOffers(ctx context.Context) (int, error)
}
