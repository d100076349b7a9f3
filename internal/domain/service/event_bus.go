package service

import (
	"context"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscribeRequest describes a live-update session.
type SubscribeRequest struct {
	SessionID    string
	UserID       uuid.UUID
	Center       entity.GeoPoint
	RadiusMeters float64
}

// EventBus fans domain events out to live sessions without blocking publishers.
type EventBus interface {
	// Publish enqueues an event. It never blocks on slow subscribers; the only
	// possible error is a full or stopped queue, which callers log and ignore.
	Publish(ctx context.Context, event *entity.DomainEvent) error

	// Subscribe registers a session and returns the channel its events arrive on.
	// Registering a session ID the same user already holds replaces the previous
	// registration and closes its channel. A session ID held by another user is rejected.
	Subscribe(req SubscribeRequest) (<-chan *entity.DomainEvent, error)

	// Unsubscribe removes a session owned by userID and closes its channel.
	// It reports whether a session was removed.
	Unsubscribe(userID uuid.UUID, sessionID string) bool

	// Release ends the subscription behind ch when the stream consuming it goes away.
	// It does nothing if the session was already replaced or removed.
	Release(sessionID string, ch <-chan *entity.DomainEvent)
}

// EventSink receives every published event before fan-out.
type EventSink interface {
	HandleEvent(ctx context.Context, event *entity.DomainEvent) error
}

// PushTransport forwards events to recipients that may have no live session.
type PushTransport interface {
	Push(ctx context.Context, event *entity.DomainEvent) error
}
