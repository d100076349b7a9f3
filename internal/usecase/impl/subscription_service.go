package impl

import (
	"context"
	"log/slog"
	"strings"

	"rescue/config"
	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type subscriptionService struct {
	eventBus      service.EventBus
	defaultRadius float64
	maxRadius     float64
	logger        *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	EventBus service.EventBus
	Config   *config.Config
	Logger   *slog.Logger
}

// NewSubscriptionService creates a new live-update subscription service
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	marketplace := params.Config.Marketplace.WithDefaults()

	return &subscriptionService{
		eventBus:      params.EventBus,
		defaultRadius: marketplace.DefaultRadiusMeters,
		maxRadius:     marketplace.MaxNearbyRadiusMeters,
		logger:        params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Subscribe registers a session covering the same area a nearby search would
func (srv *subscriptionService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (<-chan *entity.DomainEvent, error) {
	if input == nil || strings.TrimSpace(input.SessionID) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("session_id is required")
	}
	if input.UserID == uuid.Nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user is required")
	}

	radius := input.RadiusMeters
	if radius == 0 {
		radius = srv.defaultRadius
	}
	if !(radius > 0) {
		return nil, domainerrors.ErrInvalidRadius
	}
	radius = min(radius, srv.maxRadius)

	events, err := srv.eventBus.Subscribe(service.SubscribeRequest{
		SessionID:    input.SessionID,
		UserID:       input.UserID,
		Center:       input.Center,
		RadiusMeters: radius,
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "Live session opened",
		slog.String("sessionId", input.SessionID),
		slog.String("userId", input.UserID.String()),
		slog.Float64("radiusMeters", radius),
	)

	return events, nil
}

// Unsubscribe closes a session owned by the user
func (srv *subscriptionService) Unsubscribe(ctx context.Context, userID uuid.UUID, sessionID string) error {
	if !srv.eventBus.Unsubscribe(userID, sessionID) {
		return domainerrors.ErrSessionNotFound
	}

	srv.log(ctx).InfoContext(ctx, "Live session closed",
		slog.String("sessionId", sessionID),
		slog.String("userId", userID.String()),
	)

	return nil
}

// Release ends a session whose stream went away
func (srv *subscriptionService) Release(sessionID string, events <-chan *entity.DomainEvent) {
	srv.eventBus.Release(sessionID, events)
}
