package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "rescue/internal/delivery/context"
	domainerrors "rescue/internal/domain/errors"
	"rescue/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware applies the per-user token bucket to write-heavy routes.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware
func NewRateLimitMiddleware(limiter service.RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a middleware keyed by scope and the authenticated user, falling back to the client IP.
// Limiter failures let the request through.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			key := scope + ":" + c.RealIP()
			if userID, ok := GetUserID(c); ok {
				key = scope + ":" + userID.String()
			}

			allowed, retryAfter, err := m.limiter.Allow(ctx, key)
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).WarnContext(ctx, "Rate limiter unavailable",
					slog.String("key", key),
					slog.Any("error", err),
				)

				return next(c)
			}

			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				c.Response().Header().Set("Retry-After", strconv.Itoa(max(seconds, 1)))

				return domainerrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
