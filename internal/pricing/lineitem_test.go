package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testRates() *RateTable {
	return NewRateTable([]Rate{
		{MaterialName: "Gold", MaterialType: "24K", PricePerGram: 7200},
		{MaterialName: "Gold", MaterialType: "22K", PricePerGram: 6600},
		{MaterialName: "Gold", MaterialType: "18K", PricePerGram: 5400},
		{MaterialName: "Silver", MaterialType: "925", PricePerGram: 90},
	}, 6000)
}

func TestRateTableLookup(t *testing.T) {
	rates := testRates()

	tests := []struct {
		name     string
		query    string
		want     float64
		fallback bool
	}{
		{name: "exact type match", query: "22K", want: 6600},
		{name: "case insensitive type", query: "22k", want: 6600},
		{name: "exact name match", query: "Silver", want: 90},
		{name: "substring gold uses first gold entry", query: "Gold Antique", want: 7200},
		{name: "substring silver", query: "sterling silver", want: 90},
		{name: "no match falls back", query: "Platinum", want: 6000, fallback: true},
		{name: "empty query falls back", query: "", want: 6000, fallback: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := rates.Lookup(tt.query)
			assert.Equal(t, tt.want, quote.PricePerGram)
			assert.Equal(t, tt.fallback, quote.Fallback)
		})
	}
}

func TestRateTableSubstringPrefersFirstGoldEntry(t *testing.T) {
	rates := testRates()

	// "gold" with no karat resolves by name before the substring scan runs.
	quote := rates.Lookup("gold")
	assert.Equal(t, 7200.0, quote.PricePerGram)
	assert.False(t, quote.Fallback)
}

func TestPriceItemBreakdown(t *testing.T) {
	rates := testRates()

	item := LineItem{
		ProductID:         "ring-1",
		Quantity:          2,
		TotalWeightGrams:  12,
		LessWeightGrams:   2,
		MaterialType:      "22K",
		MakingRatePerGram: 500,
		HasStones:         true,
		StoneCaratWeight:  0.5,
		StoneRatePerCarat: 8000,
		StoneQuantity:     3,
		VACharges:         250,
	}

	price := PriceItem(item, rates)

	assert.Equal(t, 10.0, price.NetWeight)
	assert.Equal(t, 66000.0, price.MaterialCost)
	assert.Equal(t, 5000.0, price.MakingCharges)
	assert.Equal(t, 12000.0, price.StoneAmount)
	assert.Equal(t, 250.0, price.VACharges)
	assert.Equal(t, (66000.0+5000+12000+250)*2, price.LineTotal)
	assert.False(t, price.RateFallback)
}

func TestPriceItemStoneFactorsMustAllBePositive(t *testing.T) {
	rates := testRates()

	base := LineItem{
		Quantity:         1,
		TotalWeightGrams: 5,
		MaterialType:     "22K",
		HasStones:        true,
	}

	tests := []struct {
		name string
		mod  func(*LineItem)
	}{
		{name: "zero carat weight", mod: func(i *LineItem) { i.StoneRatePerCarat = 100; i.StoneQuantity = 1 }},
		{name: "zero rate", mod: func(i *LineItem) { i.StoneCaratWeight = 1; i.StoneQuantity = 1 }},
		{name: "zero quantity", mod: func(i *LineItem) { i.StoneCaratWeight = 1; i.StoneRatePerCarat = 100 }},
		{name: "stones disabled", mod: func(i *LineItem) {
			i.HasStones = false
			i.StoneCaratWeight = 1
			i.StoneRatePerCarat = 100
			i.StoneQuantity = 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := base
			tt.mod(&item)
			assert.Zero(t, PriceItem(item, rates).StoneAmount)
		})
	}
}

func TestPriceItemClampsNegativeInputs(t *testing.T) {
	rates := testRates()

	item := LineItem{
		Quantity:          1,
		TotalWeightGrams:  -4,
		LessWeightGrams:   -1,
		MaterialType:      "22K",
		MakingRatePerGram: -300,
		VACharges:         -50,
	}

	price := PriceItem(item, rates)
	assert.Zero(t, price.NetWeight)
	assert.Zero(t, price.MaterialCost)
	assert.Zero(t, price.MakingCharges)
	assert.Zero(t, price.VACharges)
	assert.Zero(t, price.LineTotal)
}

func TestPriceItemLessWeightExceedingTotalClampsToZero(t *testing.T) {
	rates := testRates()

	price := PriceItem(LineItem{
		Quantity:         1,
		TotalWeightGrams: 3,
		LessWeightGrams:  5,
		MaterialType:     "22K",
	}, rates)

	assert.Zero(t, price.NetWeight)
	assert.Zero(t, price.LineTotal)
}

func TestPriceItemZeroQuantityPricesSingleUnit(t *testing.T) {
	rates := testRates()

	item := LineItem{TotalWeightGrams: 2, MaterialType: "22K"}
	price := PriceItem(item, rates)
	assert.Equal(t, 1, price.Quantity)
	assert.Equal(t, 2*6600.0, price.LineTotal)
}

func TestPriceItemFallbackRateFlagged(t *testing.T) {
	rates := testRates()

	price := PriceItem(LineItem{
		Quantity:         1,
		TotalWeightGrams: 1,
		MaterialType:     "Platinum",
	}, rates)

	assert.True(t, price.RateFallback)
	assert.Equal(t, 6000.0, price.MaterialRate)
}

// Line totals must be monotonically non-decreasing in weight and rate for
// non-negative inputs.
func TestPriceItemMonotonicInWeightAndRate(t *testing.T) {
	weights := []float64{0, 1, 2.5, 5, 10, 50}
	rateValues := []float64{0, 100, 1000, 6600}

	for _, rate := range rateValues {
		rates := NewRateTable([]Rate{{MaterialName: "Gold", MaterialType: "22K", PricePerGram: rate}}, 0)
		var prev float64
		for _, w := range weights {
			price := PriceItem(LineItem{Quantity: 1, TotalWeightGrams: w, MaterialType: "22K"}, rates)
			assert.GreaterOrEqual(t, price.LineTotal, prev, "weight %v rate %v", w, rate)
			prev = price.LineTotal
		}
	}

	for _, w := range weights {
		var prev float64
		for _, rate := range rateValues {
			rates := NewRateTable([]Rate{{MaterialName: "Gold", MaterialType: "22K", PricePerGram: rate}}, 0)
			price := PriceItem(LineItem{Quantity: 1, TotalWeightGrams: w, MaterialType: "22K"}, rates)
			assert.GreaterOrEqual(t, price.LineTotal, prev, "weight %v rate %v", w, rate)
			prev = price.LineTotal
		}
	}
}
