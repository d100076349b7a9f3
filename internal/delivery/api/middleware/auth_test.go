package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"rescue/internal/domain/entity"
	"rescue/internal/domain/service"
	mockSvc "rescue/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newAuthEcho(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	auth := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/me", func(c echo.Context) error {
		userID, _ := GetUserID(c)

		return c.String(http.StatusOK, userID.String())
	}, auth.Authenticate)
	e.GET("/merchant", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}, auth.Authenticate, auth.RequireRole(entity.RoleMerchant))

	return e, tokenSvc
}

func serve(e *echo.Echo, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	e, tokenSvc := newAuthEcho(t)

	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"client"}}, nil)
	tokenSvc.EXPECT().ValidateToken("stale").Return(nil, errors.New("token is expired"))

	rec := serve(e, "/me", "Bearer good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID.String(), rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(e, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "/me", "Basic abc").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(e, "/me", "Bearer stale").Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	e, tokenSvc := newAuthEcho(t)

	tokenSvc.EXPECT().ValidateToken("client").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"client"}}, nil)
	tokenSvc.EXPECT().ValidateToken("both").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"client", "merchant"}}, nil)

	rec := serve(e, "/merchant", "Bearer client")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"FORBIDDEN"`)

	assert.Equal(t, http.StatusNoContent, serve(e, "/merchant", "Bearer both").Code)
}
