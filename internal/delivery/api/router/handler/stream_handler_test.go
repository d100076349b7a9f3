package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rescue/config"
	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	mockUC "rescue/internal/mocks/usecase"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWriteSSEEvent(t *testing.T) {
	var buf bytes.Buffer
	event := &entity.DomainEvent{ID: uuid.New(), Type: entity.EventTypeOfferUpdated, OccurredAt: time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)}

	require.NoError(t, writeSSEEvent(&buf, event))

	frame := buf.String()
	assert.True(t, strings.HasPrefix(frame, "id: "+event.ID.String()+"\nevent: offer_updated\ndata: {"))
	assert.True(t, strings.HasSuffix(frame, "}\n\n"))
	assert.Equal(t, 1, strings.Count(frame, "data: "))
}

func TestStreamHandler_Subscribe_StreamsUntilClosed(t *testing.T) {
	userID := uuid.New()
	e, auth := newTestEcho(t, userID, entity.RoleClient)
	subscriptionUC := mockUC.NewMockSubscriptionUsecase(t)
	h := NewStreamHandler(StreamHandlerParams{SubscriptionUC: subscriptionUC, Config: &config.Config{}, Logger: newDiscardLogger()})
	e.GET("/stream", h.Subscribe, auth.Authenticate)

	events := make(chan *entity.DomainEvent, 1)
	events <- &entity.DomainEvent{ID: uuid.New(), Type: entity.EventTypeNotification, RecipientID: userID}
	close(events)

	subscriptionUC.EXPECT().
		Subscribe(mock.Anything, &usecase.SubscribeInput{
			SessionID:    "tab-1",
			UserID:       userID,
			Center:       entity.GeoPoint{Lat: 48.85, Lng: 2.35},
			RadiusMeters: 800,
		}).
		Return(events, nil)
	subscriptionUC.EXPECT().Release("tab-1", mock.Anything).Return()

	rec := getWithToken(e, "/stream?session_id=tab-1&lat=48.85&lng=2.35&radius=800")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), ": connected\n\n")
	assert.Contains(t, rec.Body.String(), "event: notification\n")
}

func TestStreamHandler_Subscribe_Rejected(t *testing.T) {
	userID := uuid.New()
	e, auth := newTestEcho(t, userID, entity.RoleClient)
	subscriptionUC := mockUC.NewMockSubscriptionUsecase(t)
	h := NewStreamHandler(StreamHandlerParams{SubscriptionUC: subscriptionUC, Config: &config.Config{}, Logger: newDiscardLogger()})
	e.GET("/stream", h.Subscribe, auth.Authenticate)

	subscriptionUC.EXPECT().Subscribe(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrValidationFailed.WithDetails("session_id is required"))

	rec := getWithToken(e, "/stream?lat=1&lng=2")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "session_id is required", body.Error.Details)
}

func TestStreamHandler_Unsubscribe(t *testing.T) {
	userID := uuid.New()
	e, auth := newTestEcho(t, userID, entity.RoleClient)
	subscriptionUC := mockUC.NewMockSubscriptionUsecase(t)
	h := NewStreamHandler(StreamHandlerParams{SubscriptionUC: subscriptionUC, Config: &config.Config{}, Logger: newDiscardLogger()})
	e.DELETE("/stream/:sessionId", h.Unsubscribe, auth.Authenticate)

	subscriptionUC.EXPECT().Unsubscribe(mock.Anything, userID, "tab-1").Return(nil)
	subscriptionUC.EXPECT().Unsubscribe(mock.Anything, userID, "tab-9").Return(domainerrors.ErrSessionNotFound)

	for sessionID, want := range map[string]int{"tab-1": http.StatusOK, "tab-9": http.StatusNotFound} {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodDelete, "/stream/"+sessionID, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", testToken)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, want, rec.Code, sessionID)
	}
}
