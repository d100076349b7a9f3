package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rescue/internal/domain/entity"
	domainerrors "rescue/internal/domain/errors"
	mockUC "rescue/internal/mocks/usecase"
	"rescue/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type merchantTestServer struct {
	e          *echo.Echo
	merchantUC *mockUC.MockMerchantUsecase
	offerUC    *mockUC.MockOfferUsecase
}

func newMerchantTestServer(t *testing.T, merchantID uuid.UUID) *merchantTestServer {
	e, auth := newTestEcho(t, merchantID, entity.RoleMerchant)
	merchantUC := mockUC.NewMockMerchantUsecase(t)
	offerUC := mockUC.NewMockOfferUsecase(t)
	h := NewMerchantHandler(MerchantHandlerParams{MerchantUC: merchantUC, OfferUC: offerUC, Logger: newDiscardLogger()})

	g := e.Group("/merchant", auth.Authenticate, auth.RequireRole(entity.RoleMerchant))
	g.PUT("/location", h.UpdateLocation)
	g.PATCH("/status", h.SetStatus)
	g.POST("/offers", h.CreateOffer)
	g.PATCH("/offers/:id/status", h.SetOfferStatus)
	g.POST("/offers/:id/sales", h.RecordSale)

	return &merchantTestServer{e: e, merchantUC: merchantUC, offerUC: offerUC}
}

func (s *merchantTestServer) send(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, testToken)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)

	return rec
}

func TestMerchantHandler_UpdateLocation(t *testing.T) {
	merchantID := uuid.New()
	s := newMerchantTestServer(t, merchantID)

	s.merchantUC.EXPECT().
		UpdateLocation(mock.Anything, merchantID, entity.GeoPoint{Lat: 0, Lng: 2.35}).
		Return(&entity.Merchant{ID: merchantID, Name: "Le Fournil"}, nil)

	assert.Equal(t, http.StatusOK, s.send(http.MethodPut, "/merchant/location", `{"lat":0,"lng":2.35}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.send(http.MethodPut, "/merchant/location", `{"lng":2.35}`).Code)
}

func TestMerchantHandler_SetStatus(t *testing.T) {
	merchantID := uuid.New()
	s := newMerchantTestServer(t, merchantID)

	s.merchantUC.EXPECT().
		SetActive(mock.Anything, merchantID, false).
		Return(&entity.Merchant{ID: merchantID, Name: "Le Fournil"}, nil)

	assert.Equal(t, http.StatusOK, s.send(http.MethodPatch, "/merchant/status", `{"active":false}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.send(http.MethodPatch, "/merchant/status", `{}`).Code)
}

func TestMerchantHandler_CreateOffer(t *testing.T) {
	merchantID := uuid.New()
	s := newMerchantTestServer(t, merchantID)

	from := time.Date(2026, 5, 1, 17, 0, 0, 0, time.UTC)
	s.offerUC.EXPECT().
		CreateOffer(mock.Anything, merchantID, &usecase.OfferInput{
			Title:          "Pastry box",
			PriceBefore:    12,
			PriceAfter:     5,
			Quantity:       6,
			AvailableFrom:  from,
			AvailableUntil: from.Add(2 * time.Hour),
		}).
		Return(&entity.Offer{ID: uuid.New(), MerchantID: merchantID, Title: "Pastry box"}, nil)

	rec := s.send(http.MethodPost, "/merchant/offers",
		`{"title":"Pastry box","price_before":12,"price_after":5,"quantity":6,"available_from":"2026-05-01T17:00:00Z","available_until":"2026-05-01T19:00:00Z"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestMerchantHandler_CreateOffer_InvalidPricing(t *testing.T) {
	s := newMerchantTestServer(t, uuid.New())

	s.offerUC.EXPECT().CreateOffer(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidPricing)

	rec := s.send(http.MethodPost, "/merchant/offers",
		`{"title":"Pastry box","price_before":5,"price_after":5,"quantity":6,"available_from":"2026-05-01T17:00:00Z","available_until":"2026-05-01T19:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_PRICING", decodeEnvelope(t, rec).Error.Code)
}

func TestMerchantHandler_SetOfferStatus(t *testing.T) {
	merchantID := uuid.New()
	s := newMerchantTestServer(t, merchantID)

	offerID := uuid.New()
	s.offerUC.EXPECT().
		SetOfferActive(mock.Anything, merchantID, offerID, false).
		Return(&entity.Offer{ID: offerID, IsActive: false}, nil)

	assert.Equal(t, http.StatusOK, s.send(http.MethodPatch, "/merchant/offers/"+offerID.String()+"/status", `{"active":false}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.send(http.MethodPatch, "/merchant/offers/"+offerID.String()+"/status", `{}`).Code)
}

func TestMerchantHandler_RecordSale_Forbidden(t *testing.T) {
	merchantID := uuid.New()
	s := newMerchantTestServer(t, merchantID)

	offerID := uuid.New()
	s.offerUC.EXPECT().RecordSale(mock.Anything, merchantID, offerID, 2).Return(nil, domainerrors.ErrForbidden)

	rec := s.send(http.MethodPost, "/merchant/offers/"+offerID.String()+"/sales", `{"quantity":2}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
