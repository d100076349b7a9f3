package handler

import (
	"io"
	"log/slog"
	"testing"

	"rescue/internal/delivery/api/middleware"
	"rescue/internal/delivery/api/validator"
	"rescue/internal/domain/entity"
	"rescue/internal/domain/service"
	mockSvc "rescue/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testToken = "Bearer test-token"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho returns an echo instance wired like the API server and an auth middleware
// that accepts testToken as userID with roles.
func newTestEcho(t *testing.T, userID uuid.UUID, roles ...entity.Role) (*echo.Echo, *middleware.AuthMiddleware) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("test-token").
		Return(&service.Claims{UserID: userID, Roles: entity.Roles(roles).ToStrings()}, nil).
		Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e, middleware.NewAuthMiddleware(tokenSvc)
}
