package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculatePrice(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		rate     float64
		duration time.Duration
		expected float64
	}{
		{
			name:     "two whole hours",
			rate:     5.00,
			duration: 2 * time.Hour,
			expected: 10.00,
		},
		{
			name:     "three whole hours",
			rate:     5.00,
			duration: 3 * time.Hour,
			expected: 15.00,
		},
		{
			name:     "fractional hours are not rounded up",
			rate:     5.00,
			duration: 90 * time.Minute,
			expected: 7.50,
		},
		{
			name:     "half cent rounds up",
			rate:     4.00,
			duration: 2*time.Hour + 7*time.Minute + 30*time.Second, // 2.125h
			expected: 8.50,
		},
		{
			name:     "exact half cent rounds up",
			rate:     3.33,
			duration: 90 * time.Minute, // 4.995
			expected: 5.00,
		},
		{
			name:     "sub-cent remainder rounds to nearest",
			rate:     10.00,
			duration: 10 * time.Minute, // 1.666…
			expected: 1.67,
		},
		{
			name:     "single minute",
			rate:     6.00,
			duration: time.Minute,
			expected: 0.10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculatePrice(tt.rate, base, base.Add(tt.duration))
			assert.InDelta(t, tt.expected, got, 0.0001)
		})
	}
}

func TestCalculatePriceUsesSlotRateNotDuration(t *testing.T) {
	start := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	end := start.Add(12 * time.Hour) // crosses midnight

	assert.InDelta(t, 30.00, CalculatePrice(2.50, start, end), 0.0001)
}
