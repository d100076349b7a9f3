package impl

import (
	"context"
	"testing"

	"rescue/internal/clock"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	mockRepo "rescue/internal/mocks/repository"
	mockSvc "rescue/internal/mocks/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
	eventBus         *mockSvc.MockEventBus
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	eventBus := mockSvc.NewMockEventBus(t)

	srv := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		EventBus:         eventBus,
		Clock:            clock.NewFixed(testNow),
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return notificationServiceFixtures{
		service:          srv,
		notificationRepo: notificationRepo,
		eventBus:         eventBus,
	}
}

func TestNotificationService_Notify_PersistsBeforePublishing(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	notificationID := uuid.New()
	notification := &entity.Notification{
		RecipientID: recipientID,
		Title:       "Welcome",
		Type:        entity.NotificationTypeSystem,
	}

	var persisted bool
	fx.notificationRepo.EXPECT().
		CreateNotification(ctx, notification).
		Run(func(_ context.Context, n *entity.Notification) {
			n.ID = notificationID
			persisted = true
		}).
		Return(nil)
	fx.eventBus.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *entity.DomainEvent) bool {
			payload, ok := event.Payload.(*entity.Notification)

			return persisted && event.RecipientID == recipientID && ok && payload.ID == notificationID
		})).
		Return(nil)

	require.NoError(t, fx.service.Notify(ctx, notification))
	assert.Equal(t, testNow, notification.CreatedAt)
}

func TestNotificationService_Notify_Validation(t *testing.T) {
	tests := []struct {
		name         string
		notification *entity.Notification
	}{
		{name: "nil", notification: nil},
		{name: "no recipient", notification: &entity.Notification{Title: "x", Type: entity.NotificationTypeSystem}},
		{name: "no title", notification: &entity.Notification{RecipientID: uuid.New(), Type: entity.NotificationTypeSystem}},
		{name: "unknown type", notification: &entity.Notification{RecipientID: uuid.New(), Title: "x", Type: "promo"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)

			err := fx.service.Notify(context.Background(), tt.notification)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestNotificationService_ListNotifications_UsesConfiguredLimit(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	want := []*entity.Notification{{ID: uuid.New(), RecipientID: recipientID}}
	fx.notificationRepo.EXPECT().FindNotificationsByRecipient(ctx, recipientID, 50).Return(want, nil)

	got, err := fx.service.ListNotifications(ctx, recipientID)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNotificationService_MarkRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()
	found := uuid.New()
	missing := uuid.New()

	fx.notificationRepo.EXPECT().MarkNotificationRead(ctx, found, recipientID).Return(nil)
	fx.notificationRepo.EXPECT().MarkNotificationRead(ctx, missing, recipientID).Return(repository.ErrNotificationNotFound)

	require.NoError(t, fx.service.MarkRead(ctx, recipientID, found))
	assert.ErrorIs(t, fx.service.MarkRead(ctx, recipientID, missing), domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_Counters(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	recipientID := uuid.New()

	fx.notificationRepo.EXPECT().MarkAllNotificationsRead(ctx, recipientID).Return(4, nil)
	fx.notificationRepo.EXPECT().CountUnreadNotifications(ctx, recipientID).Return(0, errors.New("db down"))

	marked, err := fx.service.MarkAllRead(ctx, recipientID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), marked)

	_, err = fx.service.UnreadCount(ctx, recipientID)
	assert.ErrorContains(t, err, "failed to count unread notifications")
}
