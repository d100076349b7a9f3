package service

import (
	"context"

	"github.com/google/uuid"
)

// OfferLocker serializes stock mutations of a single offer within the process.
type OfferLocker interface {
	// Lock waits for the offer's lock until ctx is done or the configured timeout passes.
	// The returned function releases it.
	Lock(ctx context.Context, offerID uuid.UUID) (unlock func(), err error)
}
