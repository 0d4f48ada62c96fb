package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedRateItems builds a cart whose subtotal is exactly the given amount,
// using a 1-gram item at a per-gram rate equal to the amount.
func fixedRateItems(subtotal float64) ([]LineItem, *RateTable) {
	rates := NewRateTable([]Rate{{MaterialName: "Gold", MaterialType: "22K", PricePerGram: subtotal}}, 0)
	items := []LineItem{{ProductID: "p1", Quantity: 1, TotalWeightGrams: 1, MaterialType: "22K"}}
	return items, rates
}

func TestSettleNoDiscountWithPartialSplit(t *testing.T) {
	// subtotal=10000, GST 18% => 1800; paid 8000 => due 3800; reconciles to 11800.
	items, rates := fixedRateItems(10000)

	result := Settle(SettlementInput{
		Items:      items,
		Rates:      rates,
		GSTPercent: 18,
		Split:      PaymentSplit{Cash: 5000, Card: 3000},
	})

	assert.Equal(t, 10000.0, result.Subtotal)
	assert.Equal(t, 1800.0, result.GST)
	assert.Equal(t, 11800.0, result.FinalTotal)
	assert.Equal(t, 3800.0, result.Split.Due)
	assert.InDelta(t, 11800.0, result.Split.Paid()+result.Split.Due, Epsilon)
	assert.True(t, result.SplitValid)
	assert.True(t, result.Confirmable())
	assert.Empty(t, result.Warnings)
}

func TestSettlePercentageDiscount(t *testing.T) {
	// subtotal=5000, 10% discount => 500 off, payable 4500 before GST.
	items, rates := fixedRateItems(5000)

	result := Settle(SettlementInput{
		Items:    items,
		Rates:    rates,
		Discount: &DiscountSpec{Mode: DiscountPercentage, Value: 10},
		Split:    PaymentSplit{Cash: 4500},
	})

	assert.Equal(t, 500.0, result.DiscountAmount)
	assert.Equal(t, 4500.0, result.FinalTotal)
	assert.Zero(t, result.Split.Due)
	assert.True(t, result.Confirmable())
}

func TestSettleExchangeCreditExceedingPayable(t *testing.T) {
	// payable 50000, exchange 10g at 6000/g => credit 60000 => overrun 10000.
	items, rates := fixedRateItems(50000)

	result := Settle(SettlementInput{
		Items:    items,
		Rates:    rates,
		Exchange: &ExchangeGold{WeightGrams: 10, RatePerGram: 6000},
	})

	assert.Equal(t, 60000.0, result.ExchangeCredit)
	assert.True(t, result.NegativePayable)
	assert.Equal(t, 10000.0, result.Overrun)
	assert.Equal(t, -10000.0, result.FinalTotal)
	assert.False(t, result.Confirmable())

	require.NotEmpty(t, result.Warnings)
	assert.Equal(t, WarnNegativePayable, result.Warnings[0].Code)
	assert.Equal(t, 10000.0, result.Warnings[0].Amount)
	assert.NotEmpty(t, result.Warnings[0].Message)
}

func TestSettleExchangeCreditWithinPayable(t *testing.T) {
	items, rates := fixedRateItems(80000)

	result := Settle(SettlementInput{
		Items:    items,
		Rates:    rates,
		Exchange: &ExchangeGold{WeightGrams: 10, RatePerGram: 6000},
		Split:    PaymentSplit{Bank: 20000},
	})

	assert.Equal(t, 60000.0, result.ExchangeCredit)
	assert.Equal(t, 20000.0, result.FinalTotal)
	assert.Zero(t, result.Split.Due)
	assert.True(t, result.Confirmable())
}

func TestSettleTotalPayableDiscountReachesTarget(t *testing.T) {
	items, rates := fixedRateItems(7250)

	result := Settle(SettlementInput{
		Items:    items,
		Rates:    rates,
		Discount: &DiscountSpec{Mode: DiscountTotalPayable, Value: 7000},
		Split:    PaymentSplit{Cash: 7000},
	})

	assert.Equal(t, 250.0, result.DiscountAmount)
	assert.Equal(t, 7000.0, result.FinalTotal)
	assert.True(t, result.Confirmable())
}

func TestSettleOverpaidSplitBlocksConfirmation(t *testing.T) {
	items, rates := fixedRateItems(4000)

	result := Settle(SettlementInput{
		Items: items,
		Rates: rates,
		Split: PaymentSplit{Cash: 5000},
	})

	assert.False(t, result.SplitValid)
	assert.False(t, result.Confirmable())

	codes := make([]string, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, WarnSplitMismatch)
}

func TestSettleFlagsFallbackRates(t *testing.T) {
	rates := NewRateTable(nil, 6000)

	result := Settle(SettlementInput{
		Items: []LineItem{{ProductID: "p1", Quantity: 1, TotalWeightGrams: 1, MaterialType: "Platinum"}},
		Rates: rates,
		Split: PaymentSplit{Cash: 6000},
	})

	require.Len(t, result.Items, 1)
	assert.True(t, result.Items[0].RateFallback)

	codes := make([]string, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Contains(t, codes, WarnRateFallback)
}

func TestSettleEmptyCart(t *testing.T) {
	result := Settle(SettlementInput{GSTPercent: 18})

	assert.Zero(t, result.Subtotal)
	assert.Zero(t, result.GST)
	assert.Zero(t, result.FinalTotal)
	assert.Zero(t, result.Split.Due)
	assert.True(t, result.SplitValid)
	assert.True(t, result.Confirmable())
}

func TestSettleRecomputationIsStateless(t *testing.T) {
	items, rates := fixedRateItems(10000)

	in := SettlementInput{
		Items:      items,
		Rates:      rates,
		GSTPercent: 18,
		Discount:   &DiscountSpec{Mode: DiscountAmount, Value: 800},
		Split:      PaymentSplit{Cash: 5000, Online: 2000},
	}

	first := Settle(in)
	second := Settle(in)
	assert.Equal(t, first, second)
}

func TestAggregateEmptyAndGST(t *testing.T) {
	assert.Zero(t, Aggregate(nil, 18).Subtotal)
	assert.Zero(t, Aggregate(nil, 18).GST)

	totals := Aggregate([]ItemPrice{{LineTotal: 600}, {LineTotal: 400}}, 3)
	assert.Equal(t, 1000.0, totals.Subtotal)
	assert.Equal(t, 30.0, totals.GST)
}

func TestExchangeGoldCreditValue(t *testing.T) {
	assert.Equal(t, 60000.0, ExchangeGold{WeightGrams: 10, RatePerGram: 6000}.CreditValue())
	assert.Zero(t, ExchangeGold{WeightGrams: -5, RatePerGram: 6000}.CreditValue())
	assert.Zero(t, ExchangeGold{WeightGrams: 10, RatePerGram: -1}.CreditValue())
}
