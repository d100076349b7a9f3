package service

import (
	"context"
	"time"
)

// RateLimiter decides whether a caller identified by key may proceed.
type RateLimiter interface {
	// Allow consumes one token for key. When the caller is throttled it returns
	// false and how long to wait before the next token is available.
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}
