package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	mockSvc "rescue/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLimitedEcho(t *testing.T) (*echo.Echo, *mockSvc.MockRateLimiter) {
	limiter := mockSvc.NewMockRateLimiter(t)
	logger := newDiscardLogger()

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/reserve", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	}, NewRateLimitMiddleware(limiter, logger).Limit("reserve"))

	return e, limiter
}

func postReserve(e *echo.Echo) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/reserve", nil)
	req.Header.Set(echo.HeaderXRealIP, "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRateLimitMiddleware_Allows(t *testing.T) {
	e, limiter := newLimitedEcho(t)
	limiter.EXPECT().Allow(mock.Anything, "reserve:203.0.113.7").Return(true, time.Duration(0), nil)

	assert.Equal(t, http.StatusCreated, postReserve(e).Code)
}

func TestRateLimitMiddleware_Denies(t *testing.T) {
	e, limiter := newLimitedEcho(t)
	limiter.EXPECT().Allow(mock.Anything, "reserve:203.0.113.7").Return(false, 1500*time.Millisecond, nil)

	rec := postReserve(e)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "2", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), `"code":"RATE_LIMITED"`)
}

func TestRateLimitMiddleware_FailsOpen(t *testing.T) {
	e, limiter := newLimitedEcho(t)
	limiter.EXPECT().Allow(mock.Anything, mock.Anything).Return(false, time.Duration(0), errors.New("redis: connection refused"))

	assert.Equal(t, http.StatusCreated, postReserve(e).Code)
}
