package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"rescue/config"
	"rescue/internal/delivery/api/middleware"
	"rescue/internal/delivery/api/response"
	deliverycontext "rescue/internal/delivery/context"
	"rescue/internal/domain/entity"
	"rescue/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StreamHandlerParams holds dependencies for StreamHandler, injected by Fx.
type StreamHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// StreamHandler serves live offer and notification updates as Server-Sent Events
type StreamHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	heartbeat      time.Duration
	logger         *slog.Logger
}

// NewStreamHandler is the constructor for StreamHandler
func NewStreamHandler(params StreamHandlerParams) *StreamHandler {
	return &StreamHandler{
		subscriptionUC: params.SubscriptionUC,
		heartbeat:      params.Config.Marketplace.WithDefaults().StreamHeartbeat,
		logger:         params.Logger,
	}
}

// Subscribe handles GET /stream?session_id&lat&lng&radius and holds the connection open
func (h *StreamHandler) Subscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var lat, lng, radius float64
	if err := echo.QueryParamsBinder(c).
		MustFloat64("lat", &lat).
		MustFloat64("lng", &lng).
		Float64("radius", &radius).
		BindError(); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "lat and lng are required numbers")
	}

	ctx := c.Request().Context()
	sessionID := c.QueryParam("session_id")
	events, err := h.subscriptionUC.Subscribe(ctx, &usecase.SubscribeInput{
		SessionID:    sessionID,
		UserID:       userID,
		Center:       entity.GeoPoint{Lat: lat, Lng: lng},
		RadiusMeters: radius,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer h.subscriptionUC.Release(sessionID, events)

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger).With(slog.String("sessionId", sessionID))

	res := c.Response()
	// The stream outlives the server write timeout.
	if err := http.NewResponseController(res).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		logger.DebugContext(ctx, "Failed to clear stream write deadline", slog.Any("error", err))
	}

	header := res.Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set(echo.HeaderCacheControl, "no-cache")
	header.Set(echo.HeaderConnection, "keep-alive")
	header.Set("X-Accel-Buffering", "no")
	res.WriteHeader(http.StatusOK)

	if err := writeSSEComment(res, "connected"); err != nil {
		return nil
	}
	res.Flush()

	heartbeat := time.NewTicker(h.heartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.DebugContext(ctx, "Live stream closed by client")

			return nil
		case event, open := <-events:
			if !open {
				// Replaced by a newer subscription or unsubscribed.
				return nil
			}
			if err := writeSSEEvent(res, event); err != nil {
				logger.DebugContext(ctx, "Failed to write live event", slog.Any("error", err))

				return nil
			}
			res.Flush()
		case <-heartbeat.C:
			if err := writeSSEComment(res, "ping"); err != nil {
				return nil
			}
			res.Flush()
		}
	}
}

// Unsubscribe handles DELETE /stream/:sessionId
func (h *StreamHandler) Unsubscribe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), userID, c.Param("sessionId")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Unsubscribed successfully"})
}

// writeSSEEvent writes one event frame: id, event type and a single-line JSON data field.
func writeSSEEvent(w io.Writer, event *entity.DomainEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal live event")
	}

	if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", event.ID, event.Type, data); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func writeSSEComment(w io.Writer, comment string) error {
	_, err := io.WriteString(w, ": "+comment+"\n\n")

	return errors.WithStack(err)
}
