// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for reservation persistence.
var (
	// ErrReservationNotFound is returned when a reservation is not found.
	ErrReservationNotFound = errors.New("reservation not found")
	// ErrReservationStatusConflict is returned when the stored status no longer matches the expected one.
	ErrReservationStatusConflict = errors.New("reservation status changed concurrently")
)

// ReservationRepository defines the interface for reservation-related database operations.
type ReservationRepository interface {
	// CreateReservation persists a new reservation.
	CreateReservation(ctx context.Context, reservation *entity.Reservation) error

	// FindReservationByID retrieves a reservation by its unique ID.
	FindReservationByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)

	// FindReservationsByClient retrieves the reservations made by a client, newest first.
	FindReservationsByClient(ctx context.Context, clientID uuid.UUID) ([]*entity.Reservation, error)

	// FindReservationsByMerchant retrieves the reservations placed against a merchant's offers, newest first.
	FindReservationsByMerchant(ctx context.Context, merchantID uuid.UUID) ([]*entity.Reservation, error)

	// UpdateReservationStatus moves a reservation from one status to another.
	// Returns ErrReservationStatusConflict when the stored status is not from.
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, from, to entity.ReservationStatus) error

	// ExpirePendingReservations marks pending reservations on offers whose window closed before now as expired.
	ExpirePendingReservations(ctx context.Context, now time.Time) (int64, error)
}
