package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rescue/config"
	deliverycontext "rescue/internal/delivery/context"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"
	mockUC "rescue/internal/mocks/usecase"
	"rescue/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUC.MockPushUsecase) {
	pushUC := mockUC.NewMockPushUsecase(t)
	h := NewPushHandler(PushHandlerParams{
		Config: &config.Config{},
		PushUC: pushUC,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return h, pushUC
}

func pushBody(t *testing.T, event *service.PushEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.MessageID = event.EventID
	msg.Message.Attributes = attributes
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func testPushEvent() *service.PushEvent {
	return &service.PushEvent{
		EventID:     "evt-1",
		EventType:   "reservation_created",
		RecipientID: "5b0f3c56-2b3c-4d0e-9a55-0d7f6c1f2a10",
		Title:       "New reservation",
		Body:        "2 x Bread basket reserved, 3 left.",
	}
}

func TestPushHandler_HandlePush_Delivers(t *testing.T) {
	h, pushUC := newTestPushHandler(t)

	pushUC.EXPECT().
		DeliverPush(mock.Anything, mock.MatchedBy(func(event *service.PushEvent) bool {
			return event.EventID == "evt-1" && event.Title == "New reservation"
		})).
		Run(func(ctx context.Context, _ *service.PushEvent) {
			assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.PushResult{Devices: 2, Sent: 2}, nil)

	rec := servePush(h, pushBody(t, testPushEvent(), map[string]string{"request_id": "req-42"}))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_HandlePush_Outcomes(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid event is acknowledged", err: domainerrors.ErrValidationFailed.WithDetails("recipient_id must be a UUID"), wantStatus: http.StatusOK},
		{name: "transient failure is redelivered", err: errors.New("fcm unavailable"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, pushUC := newTestPushHandler(t)
			pushUC.EXPECT().DeliverPush(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := servePush(h, pushBody(t, testPushEvent(), nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_HandlePush_Malformed(t *testing.T) {
	h, _ := newTestPushHandler(t)

	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"%%%"}}`).Code)

	notJSON := base64.StdEncoding.EncodeToString([]byte("not json"))
	assert.Equal(t, http.StatusBadRequest, servePush(h, `{"message":{"data":"`+notJSON+`"}}`).Code)
}

func TestPushHandler_Process_RequestIDFallback(t *testing.T) {
	h, pushUC := newTestPushHandler(t)

	event := testPushEvent()
	event.RequestID = "from-payload"
	pushUC.EXPECT().
		DeliverPush(mock.Anything, event).
		Run(func(ctx context.Context, _ *service.PushEvent) {
			assert.Equal(t, "from-payload", deliverycontext.GetRequestIDFromContext(ctx))
		}).
		Return(&usecase.PushResult{}, nil)

	require.NoError(t, h.Process(context.Background(), event, ""))
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.WithStack(&retryableError{err: errors.New("x")})))
	assert.False(t, IsRetryable(errors.New("x")))
}
