package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"rescue/config"
	"rescue/internal/delivery/api/middleware"
	"rescue/internal/delivery/api/router/handler"
	"rescue/internal/domain/service"
	mockSvc "rescue/internal/mocks/service"
	mockUC "rescue/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("client").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"client"}}, nil).Maybe()

	searchUC := mockUC.NewMockSearchUsecase(t)
	offerUC := mockUC.NewMockOfferUsecase(t)
	reservationUC := mockUC.NewMockReservationUsecase(t)
	subscriptionUC := mockUC.NewMockSubscriptionUsecase(t)
	notificationUC := mockUC.NewMockNotificationUsecase(t)
	merchantUC := mockUC.NewMockMerchantUsecase(t)

	r := NewRouter(RouterParams{
		SearchHandler:       handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: searchUC, OfferUC: offerUC, Logger: logger}),
		ReservationHandler:  handler.NewReservationHandler(handler.ReservationHandlerParams{ReservationUC: reservationUC, Logger: logger}),
		StreamHandler:       handler.NewStreamHandler(handler.StreamHandlerParams{SubscriptionUC: subscriptionUC, Config: &config.Config{}, Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: notificationUC, Logger: logger}),
		MerchantHandler:     handler.NewMerchantHandler(handler.MerchantHandlerParams{MerchantUC: merchantUC, OfferUC: offerUC, Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc),
		RateLimitMiddleware: middleware.NewRateLimitMiddleware(mockSvc.NewMockRateLimiter(t), logger),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func TestRouter_Access(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{name: "health is public", method: http.MethodGet, target: "/health", wantStatus: http.StatusOK},
		{name: "search requires a token", method: http.MethodGet, target: "/api/v1/offers/search?lat=1&lng=2", wantStatus: http.StatusUnauthorized},
		{name: "merchant routes reject clients", method: http.MethodGet, target: "/api/v1/merchant/offers", token: "client", wantStatus: http.StatusForbidden},
		{name: "completing is merchant only", method: http.MethodPost, target: "/api/v1/merchant/reservations/" + uuid.NewString() + "/complete", token: "client", wantStatus: http.StatusForbidden},
	}

	e := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.token != "" {
				req.Header.Set(echo.HeaderAuthorization, "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
