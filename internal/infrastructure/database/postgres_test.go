package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/config"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
)

func TestDefaultMetalRatesResolveByPurity(t *testing.T) {
	cfg := &config.PricingConfig{DefaultGoldRate: 6000}

	rows := DefaultMetalRates(cfg)
	rates := make([]pricing.Rate, 0, len(rows))
	for _, row := range rows {
		rates = append(rates, pricing.Rate{
			MaterialName: row.MaterialName,
			MaterialType: row.MaterialType,
			PricePerGram: row.PricePerGram,
		})
	}
	table := pricing.NewRateTable(rates, cfg.DefaultGoldRate)

	// Every seeded purity must resolve to its own row, not the fallback.
	cases := map[string]float64{
		"24K": 6000,
		"22K": 6000 * 22 / 24,
		"18K": 6000 * 18 / 24,
		"925": 90,
	}
	for materialType, want := range cases {
		quote := table.Lookup(materialType)
		assert.False(t, quote.Fallback, "lookup %s hit the fallback", materialType)
		assert.InDelta(t, want, quote.PricePerGram, pricing.Epsilon, "lookup %s", materialType)
	}
}

func TestDefaultCategoriesAreOwnerless(t *testing.T) {
	categories := DefaultCategories()
	require.NotEmpty(t, categories)

	slugs := make(map[string]bool, len(categories))
	for _, category := range categories {
		assert.Nil(t, category.UserID, "seeded category %s must not claim an owner", category.Name)
		require.NotEmpty(t, category.Slug)
		assert.False(t, slugs[category.Slug], "duplicate slug %s", category.Slug)
		slugs[category.Slug] = true
	}
}
