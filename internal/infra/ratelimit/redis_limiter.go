// Package ratelimit implements a Redis-backed token bucket for write endpoints.
package ratelimit

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"rescue/config"
	"rescue/internal/clock"
	"rescue/internal/domain/lifecycle"
	"rescue/internal/domain/service"
	"rescue/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// tokenBucketScript refills and consumes one token atomically.
// Returns {allowed, remaining, retry_after_ms}.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
	Clock  clock.Clock
}

type redisLimiter struct {
	client *redis.Client
	cfg    config.RateLimitConfig
	clock  clock.Clock
}

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}

// NewRateLimiter returns a Redis token bucket, or an allow-all limiter when
// rate limiting is disabled or Redis is not configured.
func NewRateLimiter(params Params) service.RateLimiter {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled || params.Config.Redis == nil || params.Config.Redis.Addr == "" {
		params.Logger.Info("Rate limiting disabled")

		return noopLimiter{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     params.Config.Redis.Addr,
		Password: params.Config.Redis.Password,
		DB:       params.Config.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx).Err(); err != nil {
				return errors.Wrap(err, "failed to ping Redis")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	params.Logger.Info("Rate limiting enabled",
		slog.String("addr", params.Config.Redis.Addr),
		slog.Int("capacity", cfg.Capacity),
		slog.Duration("refillInterval", cfg.RefillInterval),
	)

	return newRedisLimiter(client, *cfg, params.Clock)
}

func newRedisLimiter(client *redis.Client, cfg config.RateLimitConfig, clk clock.Clock) *redisLimiter {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 10
	}
	if cfg.RefillTokens <= 0 {
		cfg.RefillTokens = 1
	}
	if cfg.RefillInterval <= 0 {
		cfg.RefillInterval = time.Second
	}
	if cfg.TTL <= 0 {
		cfg.TTL = 10 * time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "rl"
	}

	return &redisLimiter{client: client, cfg: cfg, clock: clk}
}

// Allow consumes one token for key.
func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	args := []any{
		l.clock.Now().UnixMilli(),
		l.cfg.Capacity,
		l.cfg.RefillTokens,
		l.cfg.RefillInterval.Milliseconds(),
		int64(l.cfg.TTL / time.Second),
	}

	vals, err := tokenBucketScript.Run(ctx, l.client, []string{l.cfg.Prefix + ":" + key}, args...).Result()
	if err != nil {
		return false, 0, errors.Wrap(err, "failed to run rate limit script")
	}

	return parseScriptResult(vals)
}

func parseScriptResult(vals any) (bool, time.Duration, error) {
	arr, ok := vals.([]any)
	if !ok || len(arr) != 3 {
		return false, 0, errors.Errorf("unexpected rate limit script result: %#v", vals)
	}

	allowed := asInt64(arr[0]) == 1
	retryAfter := time.Duration(asInt64(arr[2])) * time.Millisecond

	return allowed, retryAfter, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case int:
		return int64(t)
	case float64:
		return int64(t)
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	return 0
}
