package pricing

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDiscountAmount(t *testing.T) {
	assert.Equal(t, 500.0, ApplyDiscount(5000, DiscountSpec{Mode: DiscountAmount, Value: 500}))

	// Flat amounts never discount below zero payable.
	assert.Equal(t, 5000.0, ApplyDiscount(5000, DiscountSpec{Mode: DiscountAmount, Value: 5000}))
	assert.Equal(t, 5000.0, ApplyDiscount(5000, DiscountSpec{Mode: DiscountAmount, Value: 9999}))
	assert.Zero(t, ApplyDiscount(5000, DiscountSpec{Mode: DiscountAmount, Value: -100}))
}

func TestApplyDiscountPercentage(t *testing.T) {
	assert.Equal(t, 500.0, ApplyDiscount(5000, DiscountSpec{Mode: DiscountPercentage, Value: 10}))
	assert.Zero(t, ApplyDiscount(5000, DiscountSpec{Mode: DiscountPercentage, Value: 0}))

	// Out-of-range percentages are not rejected; the overrun surfaces as a
	// negative-payable warning downstream.
	assert.Equal(t, 7500.0, ApplyDiscount(5000, DiscountSpec{Mode: DiscountPercentage, Value: 150}))
}

func TestApplyDiscountTotalPayable(t *testing.T) {
	tests := []struct {
		name     string
		subtotal float64
		target   float64
		want     float64
	}{
		{name: "target below subtotal", subtotal: 5000, target: 4200, want: 800},
		{name: "target equals subtotal", subtotal: 5000, target: 5000, want: 0},
		{name: "target above subtotal", subtotal: 5000, target: 6000, want: 0},
		{name: "zero target", subtotal: 5000, target: 0, want: 5000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyDiscount(tt.subtotal, DiscountSpec{Mode: DiscountTotalPayable, Value: tt.target})
			assert.Equal(t, tt.want, got)

			// subtotal - discount must hit the requested payable when reachable.
			if tt.target >= 0 && tt.target <= tt.subtotal {
				assert.Equal(t, tt.target, tt.subtotal-got)
			}
		})
	}
}

func TestDiscountModeJSONRoundTrip(t *testing.T) {
	for _, mode := range []DiscountMode{DiscountAmount, DiscountPercentage, DiscountTotalPayable} {
		data, err := json.Marshal(mode)
		require.NoError(t, err)

		var decoded DiscountMode
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, mode, decoded)
	}

	// Legacy integer encoding is still accepted.
	var fromInt DiscountMode
	require.NoError(t, json.Unmarshal([]byte("2"), &fromInt))
	assert.Equal(t, DiscountTotalPayable, fromInt)

	var unknown DiscountMode
	assert.Error(t, json.Unmarshal([]byte(`"Bogus"`), &unknown))
}
