package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"rescue/internal/domain/entity"
	"rescue/internal/domain/service"

	"github.com/pkg/errors"
)

// pushTransport turns recipient-addressed domain events into push events for the worker.
type pushTransport struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NewPushTransport wraps an EventPublisher as the event bus push transport.
func NewPushTransport(publisher service.EventPublisher, logger *slog.Logger) service.PushTransport {
	return &pushTransport{
		publisher: publisher,
		logger:    logger,
	}
}

// Push converts the event and publishes it. Events without a push representation are skipped.
func (t *pushTransport) Push(ctx context.Context, event *entity.DomainEvent) error {
	pushEvent, ok := toPushEvent(event)
	if !ok {
		t.logger.DebugContext(ctx, "Event has no push representation, skipping",
			slog.String("event_type", string(event.Type)),
		)

		return nil
	}

	if err := t.publisher.PublishPushEvent(ctx, pushEvent); err != nil {
		return errors.Wrap(err, "failed to publish push event")
	}

	return nil
}

func toPushEvent(event *entity.DomainEvent) (*service.PushEvent, bool) {
	pushEvent := &service.PushEvent{
		RequestID:   event.RequestID,
		EventID:     event.ID.String(),
		EventType:   string(event.Type),
		RecipientID: event.RecipientID.String(),
		Data: map[string]string{
			"event_type": string(event.Type),
		},
	}

	switch payload := event.Payload.(type) {
	case *entity.ReservationEventPayload:
		if payload == nil || payload.Reservation == nil {
			return nil, false
		}
		pushEvent.Title = "New reservation"
		pushEvent.Body = fmt.Sprintf("%d x %s reserved, %d left", payload.Reservation.Quantity, payload.OfferTitle, payload.RemainingQuantity)
		pushEvent.Data["reservation_id"] = payload.Reservation.ID.String()
		pushEvent.Data["offer_id"] = payload.Reservation.OfferID.String()

	case *entity.Notification:
		if payload == nil {
			return nil, false
		}
		pushEvent.Title = payload.Title
		pushEvent.Body = payload.Message
		pushEvent.Data["notification_type"] = string(payload.Type)
		if payload.OfferID != nil {
			pushEvent.Data["offer_id"] = payload.OfferID.String()
		}

	default:
		return nil, false
	}

	return pushEvent, true
}
