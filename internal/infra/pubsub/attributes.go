package pubsub

import "rescue/internal/domain/service"

// messageAttributes returns the transport attributes used for filtering and tracing.
func messageAttributes(event *service.PushEvent) map[string]string {
	attributes := map[string]string{
		"event_id":     event.EventID,
		"event_type":   event.EventType,
		"recipient_id": event.RecipientID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
