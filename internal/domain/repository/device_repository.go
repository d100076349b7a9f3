// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"rescue/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for device persistence.
var (
	// ErrDeviceNotFound is returned when a device is not found.
	ErrDeviceNotFound = errors.New("device not found")
)

// DeviceRepository defines the interface for device-related database operations.
type DeviceRepository interface {
	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)

	// DeactivateDevicesByTokens switches off every device whose FCM token is in tokens.
	DeactivateDevicesByTokens(ctx context.Context, tokens []string) (int64, error)
}
