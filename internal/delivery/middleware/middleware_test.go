package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"rescue/config"
	deliverycontext "rescue/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		wantKeep bool
	}{
		{name: "reuses client id", header: "edge-7f3a:42", wantKeep: true},
		{name: "generates when missing", header: ""},
		{name: "replaces unsafe id", header: "abc\r\nX-Injected: 1"},
		{name: "replaces oversized id", header: strings.Repeat("a", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			var seenCtxID string
			e.GET("/", func(c echo.Context) error {
				seenCtxID = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				require.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

				return c.NoContent(http.StatusNoContent)
			}, NewRequestIDMiddleware(slog.Default()).Process)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[deliverycontext.HeaderXRequestID] = []string{tt.header}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Equal(t, got, seenCtxID)
			if tt.wantKeep {
				assert.Equal(t, tt.header, got)

				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		status  int
		wantLog string
	}{
		{name: "success hidden outside debug", path: "/api/v1/offers/search", status: http.StatusOK},
		{name: "success logged in debug", debug: true, path: "/api/v1/offers/search", status: http.StatusOK, wantLog: "level=INFO"},
		{name: "client error logged", path: "/api/v1/reservations", status: http.StatusConflict, wantLog: "level=WARN"},
		{name: "server error logged", path: "/api/v1/reservations", status: http.StatusServiceUnavailable, wantLog: "level=ERROR"},
		{name: "health skipped", debug: true, path: "/health", status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			e.Use(NewLoggerMiddleware(logger, cfg).Handle)
			e.GET(tt.path, func(c echo.Context) error {
				if tt.status >= http.StatusBadRequest {
					return echo.NewHTTPError(tt.status)
				}

				return c.NoContent(tt.status)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.status, rec.Code)
			if tt.wantLog == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
			assert.Contains(t, buf.String(), "status="+strconv.Itoa(tt.status))
		})
	}
}
