package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies inbox notifications.
type NotificationType string

const (
	NotificationTypeReservation  NotificationType = "reservation"
	NotificationTypeOffer        NotificationType = "offer"
	NotificationTypeSystem       NotificationType = "system"
	NotificationTypeReview       NotificationType = "review"
	NotificationTypeStockEmpty   NotificationType = "stock_empty"
	NotificationTypeDailySummary NotificationType = "daily_summary"
)

// IsValid checks if the type is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeReservation, NotificationTypeOffer, NotificationTypeSystem,
		NotificationTypeReview, NotificationTypeStockEmpty, NotificationTypeDailySummary:
		return true
	default:
		return false
	}
}

// Notification is a durable inbox entry addressed to one user.
type Notification struct {
	ID          uuid.UUID        `json:"id"`
	RecipientID uuid.UUID        `json:"recipient_id"`
	SenderID    *uuid.UUID       `json:"sender_id,omitempty"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	OfferID     *uuid.UUID       `json:"offer_id,omitempty"`
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}
