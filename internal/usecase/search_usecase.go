package usecase

import (
	"context"

	"rescue/internal/domain/entity"
)

// SearchInput describes an offer search around a point.
type SearchInput struct {
	Center entity.GeoPoint
	// RadiusMeters is optional in nearby mode and ignored in all mode.
	RadiusMeters *float64
	// Mode is "nearby" (default) or "all".
	Mode string
}

// SearchResult is one offer with the context a listing screen needs.
type SearchResult struct {
	Offer           *entity.Offer    `json:"offer"`
	Merchant        *entity.Merchant `json:"merchant"`
	DistanceMeters  float64          `json:"distance_meters"`
	DiscountPercent int              `json:"discount_percent"`
}

// SearchUsecase defines the proximity search over effectively available offers
type SearchUsecase interface {
	// SearchOffers returns available offers around the input center. Nearby results are ordered
	// by distance; all-mode results by creation time, newest first.
	SearchOffers(ctx context.Context, input *SearchInput) ([]*SearchResult, error)
}
