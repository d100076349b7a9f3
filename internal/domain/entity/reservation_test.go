package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReservationStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from ReservationStatus
		to   ReservationStatus
		want bool
	}{
		{ReservationStatusPending, ReservationStatusCompleted, true},
		{ReservationStatusPending, ReservationStatusExpired, true},
		{ReservationStatusPending, ReservationStatusCancelled, true},
		{ReservationStatusPending, ReservationStatusArchived, false},
		{ReservationStatusCompleted, ReservationStatusArchived, true},
		{ReservationStatusExpired, ReservationStatusArchived, true},
		{ReservationStatusCompleted, ReservationStatusPending, false},
		{ReservationStatusCancelled, ReservationStatusArchived, false},
		{ReservationStatusArchived, ReservationStatusPending, false},
		{ReservationStatusArchived, ReservationStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestReservation_IsParty(t *testing.T) {
	client, merchant := uuid.New(), uuid.New()
	reservation := &Reservation{ClientID: client, MerchantID: merchant}

	assert.True(t, reservation.IsParty(client))
	assert.True(t, reservation.IsParty(merchant))
	assert.False(t, reservation.IsParty(uuid.New()))
}
