// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for merchant persistence.
var (
	// ErrMerchantNotFound is returned when a merchant is not found.
	ErrMerchantNotFound = errors.New("merchant not found")
)

// MerchantRepository defines the interface for merchant-related database operations.
type MerchantRepository interface {
	// UpsertMerchant creates or updates a merchant profile keyed by ID.
	UpsertMerchant(ctx context.Context, merchant *entity.Merchant) error

	// FindMerchantByID retrieves a merchant by its unique ID.
	FindMerchantByID(ctx context.Context, id uuid.UUID) (*entity.Merchant, error)

	// FindMerchantsByIDs retrieves the merchants with the given IDs. Missing IDs are skipped.
	FindMerchantsByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Merchant, error)

	// FindLocatedMerchants retrieves every active merchant that has a stored location.
	FindLocatedMerchants(ctx context.Context) ([]*entity.Merchant, error)

	// UpdateMerchantLocation stores a merchant's coordinates.
	UpdateMerchantLocation(ctx context.Context, id uuid.UUID, location entity.GeoPoint) error
}
