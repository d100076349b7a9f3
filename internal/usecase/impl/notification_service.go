package impl

import (
	"context"
	"log/slog"
	"strings"

	"rescue/config"
	"rescue/internal/clock"
	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	"rescue/internal/domain/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	eventBus         service.EventBus
	clock            clock.Clock
	listLimit        int
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	EventBus         service.EventBus
	Clock            clock.Clock
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new inbox service
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		eventBus:         params.EventBus,
		clock:            params.Clock,
		listLimit:        params.Config.Marketplace.WithDefaults().NotificationListLimit,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Notify persists the entry first so the live copy carries its ID
func (srv *notificationService) Notify(ctx context.Context, notification *entity.Notification) error {
	if err := validateNotification(notification); err != nil {
		return err
	}

	now := srv.clock.Now()
	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = now
	}

	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	publishEvents(ctx, srv.eventBus, srv.log(ctx), newNotificationEvent(ctx, notification, now))

	return nil
}

// ListNotifications returns the newest inbox entries
func (srv *notificationService) ListNotifications(ctx context.Context, recipientID uuid.UUID) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindNotificationsByRecipient(ctx, recipientID, srv.listLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by recipient")
	}

	return notifications, nil
}

// MarkRead marks a single entry as read
func (srv *notificationService) MarkRead(ctx context.Context, recipientID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkNotificationRead(ctx, notificationID, recipientID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead marks every unread entry as read
func (srv *notificationService) MarkAllRead(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.MarkAllNotificationsRead(ctx, recipientID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark all notifications read")
	}

	return count, nil
}

// UnreadCount returns the number of unread entries
func (srv *notificationService) UnreadCount(ctx context.Context, recipientID uuid.UUID) (int64, error) {
	count, err := srv.notificationRepo.CountUnreadNotifications(ctx, recipientID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func validateNotification(notification *entity.Notification) error {
	if notification == nil {
		return domainerrors.ErrValidationFailed.WithDetails("notification is required")
	}
	if notification.RecipientID == uuid.Nil {
		return domainerrors.ErrValidationFailed.WithDetails("recipient is required")
	}
	if strings.TrimSpace(notification.Title) == "" {
		return domainerrors.ErrValidationFailed.WithDetails("title is required")
	}
	if !notification.Type.IsValid() {
		return domainerrors.ErrValidationFailed.WithDetails("unknown notification type")
	}

	return nil
}
