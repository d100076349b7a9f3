package model

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel is the GORM-specific struct for the 'reservations' table.
type ReservationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OfferID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientID   uuid.UUID `gorm:"type:uuid;not null;index"`
	MerchantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null;check:quantity > 0"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReservationModel) TableName() string {
	return "reservations"
}
