package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRebalanceDerivesDue(t *testing.T) {
	split := Rebalance(PaymentSplit{Cash: 5000, Card: 3000}, 11800)
	assert.Equal(t, 3800.0, split.Due)
	assert.Equal(t, 11800.0, split.TotalAmount)
	assert.True(t, Validate(split))
}

func TestRebalanceFullyPaid(t *testing.T) {
	split := Rebalance(PaymentSplit{Cash: 4500}, 4500)
	assert.Zero(t, split.Due)
	assert.True(t, Validate(split))
}

func TestRebalanceOverpaymentClampsDueAndFailsValidation(t *testing.T) {
	split := Rebalance(PaymentSplit{Cash: 6000}, 4500)
	assert.Zero(t, split.Due)
	assert.False(t, Validate(split))
}

func TestRebalanceClampsNegativeChannels(t *testing.T) {
	split := Rebalance(PaymentSplit{Cash: -100, Card: 200}, 1000)
	assert.Zero(t, split.Cash)
	assert.Equal(t, 800.0, split.Due)
	assert.True(t, Validate(split))
}

// For any non-negative total, after rebalance the five channels must
// reconcile to the total within tolerance whenever paid <= total.
func TestRebalanceReconciliationProperty(t *testing.T) {
	totals := []float64{0, 0.01, 99.99, 4500, 11800, 123456.78}
	channels := []PaymentSplit{
		{},
		{Cash: 100},
		{Cash: 33.33, Card: 33.33, Bank: 33.33, Online: 0.01},
		{Card: 4500},
		{Cash: 5000, Card: 3000},
		{Online: 123456.78},
	}

	for _, total := range totals {
		for _, ch := range channels {
			split := Rebalance(ch, total)
			if split.Paid() <= total+Epsilon {
				sum := split.Paid() + split.Due
				assert.InDelta(t, total, sum, Epsilon, "total %v channels %+v", total, ch)
				assert.True(t, Validate(split))
			}
		}
	}
}

func TestValidateToleratesFloatingRounding(t *testing.T) {
	split := PaymentSplit{Cash: 0.1, Card: 0.2, Due: 0.7, TotalAmount: 1.0}
	// 0.1+0.2 famously != 0.3 exactly; validation must still hold.
	assert.True(t, Validate(split))
}

func TestAdjustedDue(t *testing.T) {
	split := Rebalance(PaymentSplit{Cash: 5000}, 8000)
	assert.Equal(t, 3000.0, split.Due)

	// Late discount smaller than the due keeps a non-negative balance.
	assert.Equal(t, 1000.0, AdjustedDue(split, 2000))

	// A discount larger than the due drives it negative: overpaid state that
	// must block confirmation until the split is redone.
	assert.Equal(t, -500.0, AdjustedDue(split, 3500))
}
