package model

import (
	"time"

	"github.com/google/uuid"
)

// OfferModel is the GORM-specific struct for the 'offers' table.
// A CHECK (quantity >= 0) constraint backs the guarded decrement.
type OfferModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	MerchantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title          string    `gorm:"type:text;not null"`
	Description    string    `gorm:"type:text"`
	ImageURL       string    `gorm:"type:text"`
	PriceBefore    float64   `gorm:"type:numeric(10,2);not null"`
	PriceAfter     float64   `gorm:"type:numeric(10,2);not null"`
	Quantity       int       `gorm:"not null;check:quantity >= 0"`
	AvailableFrom  time.Time `gorm:"not null"`
	AvailableUntil time.Time `gorm:"not null;index"`
	IsActive       bool      `gorm:"not null;default:true"`
	IsDeleted      bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OfferModel) TableName() string {
	return "offers"
}
