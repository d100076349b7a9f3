package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarketplaceConfig_WithDefaults_Nil(t *testing.T) {
	var cfg *MarketplaceConfig

	got := cfg.WithDefaults()

	assert.Equal(t, DefaultMarketplaceConfig(), *got)
}

func TestMarketplaceConfig_WithDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &MarketplaceConfig{
		DefaultRadiusMeters: 1500,
		ThrottleInterval:    time.Second,
		AllModeResultCap:    20,
		ReserveMaxRetries:   -1,
	}

	got := cfg.WithDefaults()

	assert.InDelta(t, 1500, got.DefaultRadiusMeters, 0)
	assert.Equal(t, time.Second, got.ThrottleInterval)
	assert.Equal(t, 20, got.AllModeResultCap)
	assert.Equal(t, 0, got.ReserveMaxRetries)
	assert.InDelta(t, 50000, got.MaxNearbyRadiusMeters, 0)
	assert.Equal(t, 50, got.NotificationListLimit)
	// the receiver is not mutated
	assert.Zero(t, cfg.MaxNearbyRadiusMeters)
}
