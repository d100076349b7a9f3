package model

import (
	"time"

	"github.com/google/uuid"
)

// MerchantModel is the GORM-specific struct for the 'merchants' table.
// The ID is shared with the identity provider's user ID.
type MerchantModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	Name       string    `gorm:"type:text;not null"`
	Street     string    `gorm:"type:text"`
	City       string    `gorm:"type:text"`
	PostalCode string    `gorm:"type:varchar(20)"`
	Phone      string    `gorm:"type:varchar(50)"`
	LogoURL    string    `gorm:"type:text"`
	Latitude   *float64  `gorm:"type:double precision"`
	Longitude  *float64  `gorm:"type:double precision"`
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}
