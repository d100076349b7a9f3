package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusExpired   ReservationStatus = "expired"
	ReservationStatusArchived  ReservationStatus = "archived"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

//nolint:gochecknoglobals
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusCompleted, ReservationStatusExpired, ReservationStatusCancelled},
	ReservationStatusCompleted: {ReservationStatusArchived},
	ReservationStatusExpired:   {ReservationStatusArchived},
}

// String returns the string representation of the status.
func (s ReservationStatus) String() string {
	return string(s)
}

// IsValid checks if the status is a known value.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusCompleted, ReservationStatusExpired,
		ReservationStatusArchived, ReservationStatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether moving from s to next is allowed.
// Archived and cancelled are terminal.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Reservation is a client's claim on some quantity of an offer. Stock is debited when it is created.
type Reservation struct {
	ID         uuid.UUID         `json:"id"`
	OfferID    uuid.UUID         `json:"offer_id"`
	ClientID   uuid.UUID         `json:"client_id"`
	MerchantID uuid.UUID         `json:"merchant_id"`
	Quantity   int               `json:"quantity"`
	Status     ReservationStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// IsParty reports whether the user is the reserving client or the owning merchant.
func (r *Reservation) IsParty(userID uuid.UUID) bool {
	return r.ClientID == userID || r.MerchantID == userID
}
