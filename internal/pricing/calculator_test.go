package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrossPrice(t *testing.T) {
	// grossWeight=10, making 10% => makingWeight=1, newWeight=11,
	// labour=50*11=550, metal=11*6000=66000, total=66550.
	result := CalculateGrossPrice(GrossPriceInput{
		GrossWeightGrams:  10,
		MakingPercentage:  10,
		LabourRatePerGram: 50,
		GoldRatePerGram:   6000,
	})

	assert.Equal(t, 1.0, result.MakingWeight)
	assert.Equal(t, 11.0, result.NewWeight)
	assert.Equal(t, 550.0, result.LabourCharges)
	assert.Equal(t, 11.0, result.EffectiveMetalWeight)
	assert.Equal(t, 66000.0, result.MetalPrice)
	assert.Equal(t, 66550.0, result.TotalPrice)
}

func TestCalculateGrossPriceWithStoneSettings(t *testing.T) {
	result := CalculateGrossPrice(GrossPriceInput{
		GrossWeightGrams:  20,
		MakingPercentage:  5,
		LabourRatePerGram: 100,
		GoldRatePerGram:   6000,
		KundanPrice:       4000,
		KundanWeightGrams: 2,
		JarkanPrice:       1500,
		JarkanWeightGrams: 1,
	})

	// newWeight = 21, effective metal weight excludes kundan and jarkan.
	assert.Equal(t, 21.0, result.NewWeight)
	assert.Equal(t, 18.0, result.EffectiveMetalWeight)
	assert.Equal(t, 18*6000.0, result.MetalPrice)
	assert.Equal(t, 18*6000.0+4000+1500+2100, result.TotalPrice)
}

func TestCalculateGrossPriceClampsMakingPercentage(t *testing.T) {
	over := CalculateGrossPrice(GrossPriceInput{GrossWeightGrams: 10, MakingPercentage: 150})
	assert.Equal(t, 10.0, over.MakingWeight)

	under := CalculateGrossPrice(GrossPriceInput{GrossWeightGrams: 10, MakingPercentage: -20})
	assert.Zero(t, under.MakingWeight)
}

func TestCalculateGrossPriceStoneWeightsExceedingMetal(t *testing.T) {
	result := CalculateGrossPrice(GrossPriceInput{
		GrossWeightGrams:  1,
		GoldRatePerGram:   6000,
		KundanWeightGrams: 3,
		KundanPrice:       500,
	})

	assert.Zero(t, result.EffectiveMetalWeight)
	assert.Zero(t, result.MetalPrice)
	assert.Equal(t, 500.0, result.TotalPrice)
}

// The calculator is pure: identical inputs must yield bit-identical results.
func TestCalculateGrossPriceIdempotent(t *testing.T) {
	in := GrossPriceInput{
		GrossWeightGrams:  13.37,
		MakingPercentage:  7.5,
		LabourRatePerGram: 42.42,
		GoldRatePerGram:   6123.45,
		KundanPrice:       999.99,
		KundanWeightGrams: 0.61,
		JarkanPrice:       123.45,
		JarkanWeightGrams: 0.39,
	}

	first := CalculateGrossPrice(in)
	second := CalculateGrossPrice(in)
	assert.Equal(t, first, second)
}
