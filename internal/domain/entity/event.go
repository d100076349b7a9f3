package entity

import (
	"time"

	"github.com/google/uuid"
)

// EventType identifies the kind of domain event travelling through the event bus.
type EventType string

const (
	EventTypeOfferCreated       EventType = "offer_created"
	EventTypeOfferUpdated       EventType = "offer_updated"
	EventTypeOfferExpired       EventType = "offer_expired"
	EventTypeReservationCreated EventType = "reservation_created"
	EventTypeNotification       EventType = "notification"
)

// IsProximity reports whether the event is routed by merchant location rather than by recipient.
func (t EventType) IsProximity() bool {
	switch t {
	case EventTypeOfferCreated, EventTypeOfferUpdated, EventTypeOfferExpired:
		return true
	default:
		return false
	}
}

// DomainEvent is an in-flight notification of a state change.
// Proximity events carry Location; addressed events carry RecipientID.
type DomainEvent struct {
	ID          uuid.UUID `json:"id"`
	Type        EventType `json:"type"`
	RecipientID uuid.UUID `json:"recipient_id,omitempty"`
	MerchantID  uuid.UUID `json:"merchant_id,omitempty"`
	Location    *GeoPoint `json:"location,omitempty"`
	Payload     any       `json:"payload"`
	OccurredAt  time.Time `json:"occurred_at"`
	RequestID   string    `json:"-"`
}

// OfferEventPayload is carried by offer_* events.
type OfferEventPayload struct {
	Offer           *Offer `json:"offer"`
	DiscountPercent int    `json:"discount_percent"`
}

// ReservationEventPayload is carried by reservation_created events.
type ReservationEventPayload struct {
	Reservation       *Reservation `json:"reservation"`
	OfferTitle        string       `json:"offer_title"`
	RemainingQuantity int          `json:"remaining_quantity"`
}
