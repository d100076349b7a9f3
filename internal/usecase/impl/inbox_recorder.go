package impl

import (
	"context"
	"fmt"
	"log/slog"

	"rescue/internal/domain/entity"
	"rescue/internal/domain/repository"
	"rescue/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type inboxRecorder struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewInboxRecorder creates the event sink that keeps a durable inbox copy of addressed events.
// Notifications that already carry an ID were persisted by their producer and are skipped.
func NewInboxRecorder(notificationRepo repository.NotificationRepository, logger *slog.Logger) service.EventSink {
	return &inboxRecorder{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// HandleEvent implements service.EventSink
func (r *inboxRecorder) HandleEvent(ctx context.Context, event *entity.DomainEvent) error {
	var notification *entity.Notification

	switch event.Type {
	case entity.EventTypeNotification:
		payload, ok := event.Payload.(*entity.Notification)
		if !ok || payload.ID != uuid.Nil {
			return nil
		}
		notification = payload
	case entity.EventTypeReservationCreated:
		payload, ok := event.Payload.(*entity.ReservationEventPayload)
		if !ok || payload.Reservation == nil {
			return nil
		}
		clientID := payload.Reservation.ClientID
		offerID := payload.Reservation.OfferID
		notification = &entity.Notification{
			RecipientID: event.RecipientID,
			SenderID:    &clientID,
			Title:       "New reservation",
			Message:     fmt.Sprintf("%d x %s reserved, %d left.", payload.Reservation.Quantity, payload.OfferTitle, payload.RemainingQuantity),
			Type:        entity.NotificationTypeReservation,
			OfferID:     &offerID,
			CreatedAt:   event.OccurredAt,
		}
	default:
		return nil
	}

	if notification.RecipientID == uuid.Nil {
		return nil
	}

	if err := r.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to record inbox notification")
	}

	r.logger.DebugContext(ctx, "Inbox notification recorded",
		slog.String("notificationId", notification.ID.String()),
		slog.String("recipientId", notification.RecipientID.String()),
		slog.String("type", string(notification.Type)),
	)

	return nil
}
