package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is a business publishing offers. Location stays nil until onboarding completes.
type Merchant struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Street     string    `json:"street"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Phone      string    `json:"phone"`
	LogoURL    string    `json:"logo_url"`
	Location   *GeoPoint `json:"location,omitempty"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsDiscoverable reports whether the merchant belongs in the spatial index.
func (m *Merchant) IsDiscoverable() bool {
	return m.IsActive && m.Location != nil && m.Location.IsValid()
}
