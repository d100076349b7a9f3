package usecase

import (
	"context"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// ReservationResult is a created reservation together with the stock left on its offer.
type ReservationResult struct {
	Reservation *entity.Reservation `json:"reservation"`
	NewQuantity int                 `json:"new_quantity"`
}

// ReservationUsecase defines the reservation coordinator operations
type ReservationUsecase interface {
	// Reserve atomically checks availability, decrements stock and records a pending reservation
	Reserve(ctx context.Context, clientID, offerID uuid.UUID, quantity int) (*ReservationResult, error)

	// ListClientReservations returns the client's reservations, newest first
	ListClientReservations(ctx context.Context, clientID uuid.UUID) ([]*entity.Reservation, error)

	// ListMerchantReservations returns reservations placed against the merchant's offers, newest first
	ListMerchantReservations(ctx context.Context, merchantID uuid.UUID) ([]*entity.Reservation, error)

	// CompleteReservation marks a pending reservation as picked up; merchant only
	CompleteReservation(ctx context.Context, merchantID, reservationID uuid.UUID) (*entity.Reservation, error)

	// CancelReservation cancels a pending reservation; either party may cancel
	CancelReservation(ctx context.Context, userID, reservationID uuid.UUID) (*entity.Reservation, error)

	// ArchiveReservation archives a completed or expired reservation; either party may archive
	ArchiveReservation(ctx context.Context, userID, reservationID uuid.UUID) (*entity.Reservation, error)

	// ExpireReservations marks pending reservations on ended offers as expired
	ExpireReservations(ctx context.Context) (int64, error)
}
