package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/entity"
	"rescue/internal/domain/service"

	"github.com/google/uuid"
)

// newOfferEvent builds a proximity event for an offer. location is nil when the merchant is not indexed,
// in which case the event only reaches sinks.
func newOfferEvent(ctx context.Context, eventType entity.EventType, offer *entity.Offer, location *entity.GeoPoint, now time.Time) *entity.DomainEvent {
	return &entity.DomainEvent{
		ID:         uuid.New(),
		Type:       eventType,
		MerchantID: offer.MerchantID,
		Location:   location,
		Payload: &entity.OfferEventPayload{
			Offer:           offer,
			DiscountPercent: offer.DiscountPercent(),
		},
		OccurredAt: now,
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
	}
}

// newNotificationEvent wraps an inbox entry addressed to its recipient.
func newNotificationEvent(ctx context.Context, notification *entity.Notification, now time.Time) *entity.DomainEvent {
	return &entity.DomainEvent{
		ID:          uuid.New(),
		Type:        entity.EventTypeNotification,
		RecipientID: notification.RecipientID,
		Payload:     notification,
		OccurredAt:  now,
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
	}
}

// publishEvents hands events to the bus. Failures are logged and never returned to the caller.
func publishEvents(ctx context.Context, bus service.EventBus, logger *slog.Logger, events ...*entity.DomainEvent) {
	for _, event := range events {
		if err := bus.Publish(ctx, event); err != nil {
			logger.WarnContext(ctx, "Failed to publish domain event",
				slog.String("eventType", string(event.Type)),
				slog.String("eventId", event.ID.String()),
				slog.Any("error", err),
			)
		}
	}
}

// indexedLocation returns the merchant's indexed location, or nil.
func indexedLocation(index service.SpatialIndex, merchantID uuid.UUID) *entity.GeoPoint {
	location, ok := index.Location(merchantID)
	if !ok {
		return nil
	}

	return &location
}
