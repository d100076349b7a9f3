package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"rescue/internal/domain/entity"
	"rescue/internal/domain/service"
	mockSvc "rescue/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestTransport(t *testing.T) (service.PushTransport, *mockSvc.MockEventPublisher) {
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPushTransport(publisher, logger), publisher
}

func TestPushTransport_ReservationCreated(t *testing.T) {
	transport, publisher := newTestTransport(t)
	ctx := context.Background()

	reservation := &entity.Reservation{ID: uuid.New(), OfferID: uuid.New(), Quantity: 2}
	event := &entity.DomainEvent{
		ID:          uuid.New(),
		Type:        entity.EventTypeReservationCreated,
		RecipientID: uuid.New(),
		RequestID:   "req-1",
		Payload: &entity.ReservationEventPayload{
			Reservation:       reservation,
			OfferTitle:        "Croissant box",
			RemainingQuantity: 3,
		},
	}

	publisher.EXPECT().PublishPushEvent(ctx, mock.MatchedBy(func(pushEvent *service.PushEvent) bool {
		return pushEvent.EventID == event.ID.String() &&
			pushEvent.RecipientID == event.RecipientID.String() &&
			pushEvent.RequestID == "req-1" &&
			pushEvent.Body == "2 x Croissant box reserved, 3 left" &&
			pushEvent.Data["reservation_id"] == reservation.ID.String()
	})).Return(nil)

	require.NoError(t, transport.Push(ctx, event))
}

func TestPushTransport_Notification(t *testing.T) {
	transport, publisher := newTestTransport(t)
	ctx := context.Background()

	offerID := uuid.New()
	event := &entity.DomainEvent{
		ID:          uuid.New(),
		Type:        entity.EventTypeNotification,
		RecipientID: uuid.New(),
		Payload: &entity.Notification{
			Title:   "Stock empty",
			Message: "Your offer sold out",
			Type:    entity.NotificationTypeStockEmpty,
			OfferID: &offerID,
		},
	}

	publisher.EXPECT().PublishPushEvent(ctx, mock.MatchedBy(func(pushEvent *service.PushEvent) bool {
		return pushEvent.Title == "Stock empty" &&
			pushEvent.Data["notification_type"] == "stock_empty" &&
			pushEvent.Data["offer_id"] == offerID.String()
	})).Return(errors.New("broker down"))

	err := transport.Push(ctx, event)
	assert.ErrorContains(t, err, "broker down")
}

func TestPushTransport_SkipsUnknownPayload(t *testing.T) {
	transport, _ := newTestTransport(t)

	err := transport.Push(context.Background(), &entity.DomainEvent{
		ID:      uuid.New(),
		Type:    entity.EventTypeOfferCreated,
		Payload: &entity.OfferEventPayload{},
	})
	assert.NoError(t, err)
}
