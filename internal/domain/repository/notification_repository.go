// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found for the recipient.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for the in-app notification inbox.
type NotificationRepository interface {
	// CreateNotification persists a new inbox entry.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByRecipient retrieves the newest entries of a recipient's inbox.
	FindNotificationsByRecipient(ctx context.Context, recipientID uuid.UUID, limit int) ([]*entity.Notification, error)

	// MarkNotificationRead marks one entry as read, scoped to its recipient.
	MarkNotificationRead(ctx context.Context, id, recipientID uuid.UUID) error

	// MarkAllNotificationsRead marks every unread entry of a recipient as read and returns the count.
	MarkAllNotificationsRead(ctx context.Context, recipientID uuid.UUID) (int64, error)

	// CountUnreadNotifications returns the number of unread entries of a recipient.
	CountUnreadNotifications(ctx context.Context, recipientID uuid.UUID) (int64, error)
}
