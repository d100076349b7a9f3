package impl

import (
	"context"
	"fmt"
	"testing"

	"rescue/internal/domain/constants"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"
	mockRepo "rescue/internal/mocks/repository"
	mockSvc "rescue/internal/mocks/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushServiceFixtures struct {
	service         usecase.PushUsecase
	deviceRepo      *mockRepo.MockDeviceRepository
	notificationSvc *mockSvc.MockNotificationService
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)

	srv := NewPushService(PushServiceParams{
		DeviceRepo:      deviceRepo,
		NotificationSvc: notificationSvc,
		Logger:          newDiscardLogger(),
	})

	return pushServiceFixtures{
		service:         srv,
		deviceRepo:      deviceRepo,
		notificationSvc: notificationSvc,
	}
}

func devicesWithTokens(userID uuid.UUID, count int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, count)
	for i := range count {
		devices = append(devices, &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true})
	}

	return devices
}

func TestPushService_DeliverPush_SingleDevice(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.PushEvent{EventID: "e1", RecipientID: userID.String(), Title: "Reservation confirmed", Body: "2 x Bread basket"}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 1), nil)
	fx.notificationSvc.EXPECT().SendSingleNotification(ctx, "token-0", event.Title, event.Body, event.Data).Return(nil)

	result, err := fx.service.DeliverPush(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Devices: 1, Sent: 1}, result)
}

func TestPushService_DeliverPush_InvalidSingleToken(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.PushEvent{RecipientID: userID.String(), Title: "Sold out"}

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 1), nil)
	fx.notificationSvc.EXPECT().
		SendSingleNotification(ctx, "token-0", event.Title, event.Body, event.Data).
		Return(errors.Wrap(service.ErrInvalidDeviceToken, "unregistered"))
	fx.deviceRepo.EXPECT().DeactivateDevicesByTokens(ctx, []string{"token-0"}).Return(1, nil)

	result, err := fx.service.DeliverPush(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Devices: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestPushService_DeliverPush_BatchesAndContinuesAfterFailure(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	userID := uuid.New()
	event := &service.PushEvent{RecipientID: userID.String(), Title: "New offer nearby"}
	devices := devicesWithTokens(userID, constants.FirebaseBatchSize+3)

	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devices, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == constants.FirebaseBatchSize }), event.Title, event.Body, event.Data).
		Return(0, 0, nil, errors.New("quota exceeded"))
	fx.notificationSvc.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 3 }), event.Title, event.Body, event.Data).
		Return(2, 1, []string{"token-501"}, nil)
	fx.deviceRepo.EXPECT().DeactivateDevicesByTokens(ctx, []string{"token-501"}).Return(0, errors.New("db down"))

	result, err := fx.service.DeliverPush(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, len(devices), result.Devices)
	assert.Equal(t, 2, result.Sent)
	assert.Equal(t, constants.FirebaseBatchSize+1, result.Failed)
	assert.Equal(t, 1, result.InvalidTokens)
}

func TestPushService_DeliverPush_NoDevices(t *testing.T) {
	fx := createTestPushService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, nil)

	result, err := fx.service.DeliverPush(ctx, &service.PushEvent{RecipientID: userID.String(), Title: "Hi"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Devices)
}

func TestPushService_DeliverPush_Validation(t *testing.T) {
	fx := createTestPushService(t)
	ctx := context.Background()

	_, err := fx.service.DeliverPush(ctx, &service.PushEvent{RecipientID: uuid.NewString()})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = fx.service.DeliverPush(ctx, &service.PushEvent{RecipientID: "not-a-uuid", Title: "Hi"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
