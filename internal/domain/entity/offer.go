package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Offer is a merchant's time-boxed, quantity-limited discounted listing.
type Offer struct {
	ID             uuid.UUID `json:"id"`
	MerchantID     uuid.UUID `json:"merchant_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ImageURL       string    `json:"image_url"`
	PriceBefore    float64   `json:"price_before"`
	PriceAfter     float64   `json:"price_after"`
	Quantity       int       `json:"quantity"`
	AvailableFrom  time.Time `json:"available_from"`
	AvailableUntil time.Time `json:"available_until"`
	IsActive       bool      `json:"is_active"`
	IsDeleted      bool      `json:"is_deleted"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasValidPricing reports whether the discounted price is below the original price.
func (o *Offer) HasValidPricing() bool {
	return o.PriceBefore > 0 && o.PriceAfter >= 0 && o.PriceAfter < o.PriceBefore
}

// HasValidWindow reports whether the availability window is non-empty.
func (o *Offer) HasValidWindow() bool {
	return o.AvailableFrom.Before(o.AvailableUntil)
}

// InWindow reports whether now falls inside [AvailableFrom, AvailableUntil].
func (o *Offer) InWindow(now time.Time) bool {
	return !now.Before(o.AvailableFrom) && !now.After(o.AvailableUntil)
}

// IsOpen reports whether the offer accepts reservations at now, regardless of stock.
func (o *Offer) IsOpen(now time.Time) bool {
	return o.IsActive && !o.IsDeleted && o.InWindow(now)
}

// IsEffectivelyAvailable reports whether the offer is open and still has stock.
func (o *Offer) IsEffectivelyAvailable(now time.Time) bool {
	return o.IsOpen(now) && o.Quantity > 0
}

// DiscountPercent returns round((before-after)/before*100).
func (o *Offer) DiscountPercent() int {
	if o.PriceBefore <= 0 {
		return 0
	}

	return int(math.Round((o.PriceBefore - o.PriceAfter) / o.PriceBefore * 100))
}
