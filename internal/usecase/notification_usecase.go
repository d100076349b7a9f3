package usecase

import (
	"context"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the in-app inbox operations
type NotificationUsecase interface {
	// Notify persists an inbox entry and publishes it to the recipient's live sessions
	Notify(ctx context.Context, notification *entity.Notification) error

	// ListNotifications returns the newest entries of the recipient's inbox
	ListNotifications(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error)

	// MarkRead marks one of the recipient's entries as read
	MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread entry as read and returns how many changed
	MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// UnreadCount returns the number of unread entries
	UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
