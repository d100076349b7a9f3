package usecase

import (
	"context"

	"rescue/internal/domain/service"
)

// PushResult summarizes one push delivery.
type PushResult struct {
	Devices       int `json:"devices"`
	Sent          int `json:"sent"`
	Failed        int `json:"failed"`
	InvalidTokens int `json:"invalid_tokens"`
}

// PushUsecase defines push delivery performed by the worker
type PushUsecase interface {
	// DeliverPush sends the event to every active device of its recipient
	DeliverPush(ctx context.Context, event *service.PushEvent) (*PushResult, error)
}
