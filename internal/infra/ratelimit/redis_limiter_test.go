package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"rescue/config"
	"rescue/internal/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestParseScriptResult(t *testing.T) {
	allowed, retryAfter, err := parseScriptResult([]any{int64(1), int64(4), int64(0)})
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Zero(t, retryAfter)

	allowed, retryAfter, err = parseScriptResult([]any{int64(0), int64(0), "750"})
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 750*time.Millisecond, retryAfter)

	_, _, err = parseScriptResult("garbage")
	assert.Error(t, err)
}

func TestNewRateLimiter_DisabledFallsBackToAllowAll(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cases := map[string]*config.Config{
		"no rate limit section": {},
		"disabled": {
			RateLimit: &config.RateLimitConfig{Enabled: false},
			Redis:     &config.RedisConfig{Addr: "localhost:6379"},
		},
		"no redis": {
			RateLimit: &config.RateLimitConfig{Enabled: true},
		},
	}

	for name, cfg := range cases {
		t.Run(name, func(t *testing.T) {
			limiter := NewRateLimiter(Params{
				Lifecycle: fxtest.NewLifecycle(t),
				Config:    cfg,
				Logger:    logger,
				Clock:     clock.NewSystem(),
			})

			allowed, retryAfter, err := limiter.Allow(context.Background(), "user-1")
			require.NoError(t, err)
			assert.True(t, allowed)
			assert.Zero(t, retryAfter)
		})
	}
}

func TestNewRedisLimiter_Defaults(t *testing.T) {
	limiter := newRedisLimiter(nil, config.RateLimitConfig{}, clock.NewSystem())

	assert.Equal(t, 10, limiter.cfg.Capacity)
	assert.Equal(t, 1, limiter.cfg.RefillTokens)
	assert.Equal(t, time.Second, limiter.cfg.RefillInterval)
	assert.Equal(t, 10*time.Minute, limiter.cfg.TTL)
	assert.Equal(t, "rl", limiter.cfg.Prefix)
}
