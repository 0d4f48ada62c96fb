package pricing

import "math"

// Epsilon is the tolerance in currency units used when reconciling floating
// point amounts.
const Epsilon = 0.01

// PaymentSplit allocates a payable total across payment channels. Due is the
// auto-derived unpaid remainder; it is never entered directly.
type PaymentSplit struct {
	Cash        float64 `json:"cash"`
	Card        float64 `json:"card"`
	Bank        float64 `json:"bank"`
	Online      float64 `json:"online"`
	Due         float64 `json:"due"`
	TotalAmount float64 `json:"total_amount"`
}

// Paid returns the sum of the four active payment channels.
func (s PaymentSplit) Paid() float64 {
	return clampNonNegative(s.Cash) + clampNonNegative(s.Card) +
		clampNonNegative(s.Bank) + clampNonNegative(s.Online)
}

// Rebalance recomputes the due amount for a payable total:
// due = max(0, total - paid). Called whenever any channel or the total
// changes, before validation.
func Rebalance(split PaymentSplit, totalAmount float64) PaymentSplit {
	split.Cash = clampNonNegative(split.Cash)
	split.Card = clampNonNegative(split.Card)
	split.Bank = clampNonNegative(split.Bank)
	split.Online = clampNonNegative(split.Online)
	split.TotalAmount = clampNonNegative(totalAmount)

	due := split.TotalAmount - split.Paid()
	if due < 0 {
		due = 0
	}
	split.Due = due
	return split
}

// Validate reports whether the five channels reconcile to the total within
// Epsilon.
func Validate(split PaymentSplit) bool {
	sum := split.Paid() + split.Due
	return math.Abs(sum-split.TotalAmount) < Epsilon
}

// AdjustedDue returns the signed due amount after a discount applied on top
// of an already-confirmed split. A negative result means the customer has
// overpaid and the split must be redone before the order can be confirmed.
func AdjustedDue(split PaymentSplit, lateDiscount float64) float64 {
	return split.Due - lateDiscount
}
