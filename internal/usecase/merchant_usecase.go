package usecase

import (
	"context"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// MerchantProfileInput carries the onboarding fields of a merchant.
type MerchantProfileInput struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Phone      string `json:"phone"`
	LogoURL    string `json:"logo_url"`
}

// MerchantUsecase defines merchant onboarding and location management
type MerchantUsecase interface {
	// UpsertProfile creates or updates the merchant profile
	UpsertProfile(ctx context.Context, merchantID uuid.UUID, input *MerchantProfileInput) (*entity.Merchant, error)

	// GetProfile returns the merchant profile
	GetProfile(ctx context.Context, merchantID uuid.UUID) (*entity.Merchant, error)

	// UpdateLocation stores resolved coordinates and makes the merchant discoverable
	UpdateLocation(ctx context.Context, merchantID uuid.UUID, location entity.GeoPoint) (*entity.Merchant, error)

	// SetActive activates or deactivates the merchant. Inactive merchants leave the spatial index.
	SetActive(ctx context.Context, merchantID uuid.UUID, active bool) (*entity.Merchant, error)

	// LoadIndex fills the spatial index from persisted merchant locations
	LoadIndex(ctx context.Context) (int, error)
}
