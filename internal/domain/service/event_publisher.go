package service

import (
	"context"
)

// PushEvent is the message handed to the push worker through the message queue.
type PushEvent struct {
	RequestID   string            `json:"request_id,omitempty"` // For distributed tracing
	EventID     string            `json:"event_id"`
	EventType   string            `json:"event_type"`
	RecipientID string            `json:"recipient_id"`
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	Data        map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPushEvent publishes a push event for async delivery
	PublishPushEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
