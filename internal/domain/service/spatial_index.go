package service

import (
	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// SpatialMatch is one merchant found by a proximity query.
type SpatialMatch struct {
	MerchantID     uuid.UUID
	DistanceMeters float64
}

// SpatialIndex keeps the current location of every discoverable merchant in memory.
// Implementations must be safe for concurrent use.
type SpatialIndex interface {
	// Upsert records or moves a merchant's location.
	Upsert(merchantID uuid.UUID, location entity.GeoPoint) error

	// Remove drops a merchant from the index. Removing an unknown merchant is a no-op.
	Remove(merchantID uuid.UUID)

	// Location returns the indexed location of a merchant.
	Location(merchantID uuid.UUID) (entity.GeoPoint, bool)

	// Query returns the merchants within radiusMeters of center (inclusive),
	// ordered by ascending great-circle distance.
	Query(center entity.GeoPoint, radiusMeters float64) ([]SpatialMatch, error)

	// Size returns the number of indexed merchants.
	Size() int
}
