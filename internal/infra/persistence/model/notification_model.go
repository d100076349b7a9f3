package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents one entry of a user's in-app inbox.
type NotificationModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_recipient_read"`
	SenderID    *uuid.UUID `gorm:"type:uuid"`
	Title       string     `gorm:"type:text;not null"`
	Message     string     `gorm:"type:text;not null"`
	Type        string     `gorm:"type:varchar(30);not null"`
	OfferID     *uuid.UUID `gorm:"type:uuid"`
	IsRead      bool       `gorm:"not null;default:false;index:idx_notifications_recipient_read"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
