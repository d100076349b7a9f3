package impl

import (
	"context"
	"log/slog"

	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/constants"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/repository"
	"rescue/internal/domain/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type pushService struct {
	deviceRepo      repository.DeviceRepository
	notificationSvc service.NotificationService
	logger          *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	DeviceRepo      repository.DeviceRepository
	NotificationSvc service.NotificationService
	Logger          *slog.Logger
}

// NewPushService creates the worker-side push delivery service
func NewPushService(params PushServiceParams) usecase.PushUsecase {
	return &pushService{
		deviceRepo:      params.DeviceRepo,
		notificationSvc: params.NotificationSvc,
		logger:          params.Logger,
	}
}

func (srv *pushService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// DeliverPush sends the event to every active device of the recipient and retires rejected tokens
func (srv *pushService) DeliverPush(ctx context.Context, event *service.PushEvent) (*usecase.PushResult, error) {
	if event == nil || event.Title == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("push event title is required")
	}

	recipientID, err := uuid.Parse(event.RecipientID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("recipient_id must be a UUID")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, recipientID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	result := &usecase.PushResult{Devices: len(devices)}
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	var invalidTokens []string
	if len(tokens) == 1 {
		err := srv.notificationSvc.SendSingleNotification(ctx, tokens[0], event.Title, event.Body, event.Data)
		switch {
		case err == nil:
			result.Sent = 1
		case errors.Is(err, service.ErrInvalidDeviceToken):
			result.Failed = 1
			invalidTokens = tokens
		default:
			return nil, errors.Wrap(err, "failed to send push notification")
		}
	} else {
		for start := 0; start < len(tokens); start += constants.FirebaseBatchSize {
			end := min(start+constants.FirebaseBatchSize, len(tokens))
			batch := tokens[start:end]

			sent, failed, batchInvalid, err := srv.notificationSvc.SendBatchNotification(ctx, batch, event.Title, event.Body, event.Data)
			if err != nil {
				// Keep going with the remaining batches.
				srv.log(ctx).WarnContext(ctx, "Push batch failed",
					slog.Int("batchSize", len(batch)),
					slog.Any("error", err),
				)
				result.Failed += len(batch)

				continue
			}

			result.Sent += sent
			result.Failed += failed
			invalidTokens = append(invalidTokens, batchInvalid...)
		}
	}

	result.InvalidTokens = len(invalidTokens)
	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateDevicesByTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).WarnContext(ctx, "Failed to deactivate invalid devices", slog.Any("error", err))
		} else {
			srv.log(ctx).InfoContext(ctx, "Deactivated invalid devices", slog.Int64("count", deactivated))
		}
	}

	srv.log(ctx).InfoContext(ctx, "Push delivered",
		slog.String("eventId", event.EventID),
		slog.String("eventType", event.EventType),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}
