package usecase

import (
	"context"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscribeInput opens a live-update session for a discovery view.
type SubscribeInput struct {
	SessionID string
	UserID    uuid.UUID
	Center    entity.GeoPoint
	// RadiusMeters falls back to the default search radius when zero.
	RadiusMeters float64
}

// SubscriptionUsecase defines live-update session management
type SubscriptionUsecase interface {
	// Subscribe registers the session and returns the channel its events arrive on
	Subscribe(ctx context.Context, input *SubscribeInput) (<-chan *entity.DomainEvent, error)

	// Unsubscribe closes a session owned by the user
	Unsubscribe(ctx context.Context, userID uuid.UUID, sessionID string) error

	// Release ends a session when its stream disconnects
	Release(sessionID string, events <-chan *entity.DomainEvent)
}
