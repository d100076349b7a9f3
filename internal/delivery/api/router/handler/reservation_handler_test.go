package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	mockUC "rescue/internal/mocks/usecase"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details any    `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func newReservationTestServer(t *testing.T, userID uuid.UUID, roles ...entity.Role) (*echo.Echo, *mockUC.MockReservationUsecase) {
	e, auth := newTestEcho(t, userID, roles...)
	reservationUC := mockUC.NewMockReservationUsecase(t)
	h := NewReservationHandler(ReservationHandlerParams{ReservationUC: reservationUC, Logger: newDiscardLogger()})

	e.POST("/reservations", h.Reserve, auth.Authenticate, auth.RequireRole(entity.RoleClient))
	e.POST("/reservations/:id/cancel", h.CancelReservation, auth.Authenticate)

	return e, reservationUC
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, testToken)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestReservationHandler_Reserve_Created(t *testing.T) {
	clientID := uuid.New()
	e, reservationUC := newReservationTestServer(t, clientID, entity.RoleClient)

	offerID := uuid.New()
	reservationUC.EXPECT().
		Reserve(mock.Anything, clientID, offerID, 2).
		Return(&usecase.ReservationResult{
			Reservation: &entity.Reservation{ID: uuid.New(), OfferID: offerID, ClientID: clientID, Quantity: 2, Status: entity.ReservationStatusPending},
			NewQuantity: 3,
		}, nil)

	rec := postJSON(e, "/reservations", `{"offer_id":"`+offerID.String()+`","quantity":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data struct {
		NewQuantity int `json:"new_quantity"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &data))
	assert.Equal(t, 3, data.NewQuantity)
}

func TestReservationHandler_Reserve_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{name: "sold out", err: domainerrors.ErrInsufficientStock, wantCode: http.StatusConflict, wantErr: "INSUFFICIENT_STOCK"},
		{name: "closed window", err: domainerrors.ErrOfferNotAvailable, wantCode: http.StatusConflict, wantErr: "OFFER_NOT_AVAILABLE"},
		{name: "bad quantity", err: domainerrors.ErrInvalidQuantity, wantCode: http.StatusBadRequest, wantErr: "INVALID_QUANTITY"},
		{name: "unknown offer", err: domainerrors.ErrOfferNotFound, wantCode: http.StatusNotFound, wantErr: "OFFER_NOT_FOUND"},
		{name: "retries exhausted", err: domainerrors.ErrReservationUnavailable.WrapMessage("reservation retries exhausted"), wantCode: http.StatusServiceUnavailable, wantErr: "RESERVATION_UNAVAILABLE"},
		{name: "unexpected", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clientID := uuid.New()
			e, reservationUC := newReservationTestServer(t, clientID, entity.RoleClient)

			offerID := uuid.New()
			reservationUC.EXPECT().Reserve(mock.Anything, clientID, offerID, 1).Return(nil, tt.err)

			rec := postJSON(e, "/reservations", `{"offer_id":"`+offerID.String()+`","quantity":1}`)
			assert.Equal(t, tt.wantCode, rec.Code)

			body := decodeEnvelope(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, body.Error.Code)
		})
	}
}

func TestReservationHandler_Reserve_RequiresClientRole(t *testing.T) {
	e, _ := newReservationTestServer(t, uuid.New(), entity.RoleMerchant)

	rec := postJSON(e, "/reservations", `{"offer_id":"`+uuid.NewString()+`","quantity":1}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestReservationHandler_Reserve_MissingOffer(t *testing.T) {
	e, _ := newReservationTestServer(t, uuid.New(), entity.RoleClient)

	rec := postJSON(e, "/reservations", `{"quantity":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, rec).Error.Code)
}

func TestReservationHandler_Unauthenticated(t *testing.T) {
	e, _ := newReservationTestServer(t, uuid.New(), entity.RoleClient)

	req := httptest.NewRequest(http.MethodPost, "/reservations/"+uuid.NewString()+"/cancel", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReservationHandler_CancelReservation(t *testing.T) {
	userID := uuid.New()
	e, reservationUC := newReservationTestServer(t, userID, entity.RoleClient)

	reservationID := uuid.New()
	reservationUC.EXPECT().
		CancelReservation(mock.Anything, userID, reservationID).
		Return(&entity.Reservation{ID: reservationID, Status: entity.ReservationStatusCancelled}, nil)

	rec := postJSON(e, "/reservations/"+reservationID.String()+"/cancel", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = postJSON(e, "/reservations/not-a-uuid/cancel", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
