package impl

import (
	"io"
	"log/slog"
	"time"

	"rescue/config"
	"rescue/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	marketplace := config.DefaultMarketplaceConfig()
	marketplace.ReserveRetryBackoff = time.Millisecond

	return &config.Config{Marketplace: &marketplace}
}

// testNow is the instant every fixed test clock returns.
var testNow = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

func newAvailableOffer(merchantID uuid.UUID, quantity int) *entity.Offer {
	return &entity.Offer{
		ID:             uuid.New(),
		MerchantID:     merchantID,
		Title:          "Bread basket",
		PriceBefore:    10,
		PriceAfter:     4,
		Quantity:       quantity,
		AvailableFrom:  testNow.Add(-time.Hour),
		AvailableUntil: testNow.Add(2 * time.Hour),
		IsActive:       true,
		CreatedAt:      testNow.Add(-2 * time.Hour),
		UpdatedAt:      testNow.Add(-2 * time.Hour),
	}
}

func eventOfType(eventType entity.EventType) func(*entity.DomainEvent) bool {
	return func(event *entity.DomainEvent) bool {
		return event != nil && event.Type == eventType
	}
}
