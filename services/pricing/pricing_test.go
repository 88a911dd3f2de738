package pricing_test

import (
	"testing"

	"car-rental-booking/services/pricing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateShortTier(t *testing.T) {
	assert.Equal(t, 1500.0, pricing.Calculate("12", 0))
	assert.Equal(t, 1750.5, pricing.Calculate("12", 250.5))
}

func TestCalculateLongTier(t *testing.T) {
	for _, duration := range []string{"24", "48", "weekly", ""} {
		assert.Equal(t, 2500.0, pricing.Calculate(duration, 0), "duration %q", duration)
		assert.Equal(t, 2700.0, pricing.Calculate(duration, 200), "duration %q", duration)
	}
}

func TestBaseRate(t *testing.T) {
	assert.Equal(t, 1500.0, pricing.BaseRate("12"))
	assert.Equal(t, 2500.0, pricing.BaseRate("6"))
	assert.Equal(t, 2500.0, pricing.BaseRate("121"))
}
