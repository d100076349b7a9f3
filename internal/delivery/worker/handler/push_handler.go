package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"rescue/config"
	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/constants"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError marks a failure the broker should redeliver
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// Retryable marks err as transient so the broker redelivers the event
func Retryable(err error) error {
	return &retryableError{err: err}
}

// IsRetryable reports whether a push event should be redelivered after err
func IsRetryable(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler delivers push events received from the message queue
type PushHandler struct {
	verifyPushAuth bool
	pushUC         usecase.PushUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	PushUC usecase.PushUsecase
	Logger *slog.Logger
}

// NewPushHandler creates a new push event handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Google signs push requests; local and RabbitMQ deliveries are trusted.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		pushUC:         params.PushUC,
		logger:         params.Logger,
	}
}

// HandlePush handles POST /push from Google Pub/Sub or the local publisher.
// 503 asks for redelivery; any other outcome acknowledges the message.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			logger.WarnContext(ctx, "[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		logger.ErrorContext(ctx, "[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		logger.ErrorContext(ctx, "[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.PushEvent
	if err := json.Unmarshal(data, &event); err != nil {
		logger.ErrorContext(ctx, "[Worker] Failed to parse push event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.Process(ctx, &event, pushMsg.Message.Attributes["request_id"]); err != nil && IsRetryable(err) {
		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// Process delivers one push event. Invalid events are dropped and reported as non-retryable;
// anything else is wrapped as retryable.
func (h *PushHandler) Process(ctx context.Context, event *service.PushEvent, attributeRequestID string) error {
	requestID := extractRequestID(ctx, attributeRequestID, event)
	logger := h.logger.With(slog.String("requestId", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	logger.InfoContext(ctx, "[Worker] Processing push event",
		slog.String("eventId", event.EventID),
		slog.String("eventType", event.EventType),
		slog.String("recipientId", event.RecipientID),
	)

	result, err := h.pushUC.DeliverPush(ctx, event)
	if err != nil {
		if domainerrors.IsClientError(err) {
			logger.WarnContext(ctx, "[Worker] Dropping invalid push event",
				slog.String("eventId", event.EventID),
				slog.Any("error", err),
			)

			return err
		}

		logger.ErrorContext(ctx, "[Worker] Failed to deliver push event",
			slog.String("eventId", event.EventID),
			slog.Any("error", err),
		)

		return Retryable(err)
	}

	logger.InfoContext(ctx, "[Worker] Push event delivered",
		slog.String("eventId", event.EventID),
		slog.Int("devices", result.Devices),
		slog.Int("sent", result.Sent),
		slog.Int("failed", result.Failed),
	)

	return nil
}

// extractRequestID prefers transport attributes, then the event payload, then the inbound request
func extractRequestID(ctx context.Context, attributeRequestID string, event *service.PushEvent) string {
	if attributeRequestID != "" {
		return attributeRequestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token Google attaches to Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the push endpoint URL.
	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
