package pricing

import "fmt"

// SettlementInput carries everything one settlement computation needs. The
// rate table is an explicit snapshot so the computation has no hidden shared
// state and can be re-run cheaply on every input change.
type SettlementInput struct {
	Items      []LineItem
	Rates      *RateTable
	GSTPercent float64
	Discount   *DiscountSpec
	Exchange   *ExchangeGold
	Split      PaymentSplit
}

// Warning is a blocking condition surfaced by the settlement pipeline.
// Business-rule violations never produce errors; they produce warnings with a
// human-readable message and a machine-checkable code.
type Warning struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Amount  float64 `json:"amount,omitempty"`
}

// Warning codes.
const (
	WarnNegativePayable = "NEGATIVE_PAYABLE"
	WarnSplitMismatch   = "SPLIT_MISMATCH"
	WarnRateFallback    = "RATE_FALLBACK"
)

// SettlementResult is the final reconciled monetary breakdown handed to
// order persistence on confirm. It is recomputed from scratch on every input
// change and never partially persisted.
type SettlementResult struct {
	Items           []ItemPrice  `json:"items"`
	Subtotal        float64      `json:"subtotal"`
	GST             float64      `json:"gst"`
	DiscountAmount  float64      `json:"discount_amount"`
	ExchangeCredit  float64      `json:"exchange_credit"`
	FinalTotal      float64      `json:"final_total"`
	Split           PaymentSplit `json:"split"`
	SplitValid      bool         `json:"split_valid"`
	NegativePayable bool         `json:"negative_payable"`
	Overrun         float64      `json:"overrun"`
	Warnings        []Warning    `json:"warnings,omitempty"`
}

// Confirmable reports whether the settlement may be persisted as an order.
// Any blocking warning or an unreconciled split holds confirmation.
func (r SettlementResult) Confirmable() bool {
	return r.SplitValid && !r.NegativePayable
}

// Settle runs the full pipeline: price each line, aggregate, discount,
// exchange credit, then rebalance and validate the payment split against the
// final payable total.
func Settle(in SettlementInput) SettlementResult {
	rates := in.Rates
	if rates == nil {
		rates = NewRateTable(nil, 0)
	}

	items := make([]ItemPrice, 0, len(in.Items))
	fallbackUsed := false
	for _, line := range in.Items {
		priced := PriceItem(line, rates)
		if priced.RateFallback {
			fallbackUsed = true
		}
		items = append(items, priced)
	}

	totals := Aggregate(items, in.GSTPercent)

	var discountAmount float64
	if in.Discount != nil {
		discountAmount = ApplyDiscount(totals.Subtotal, *in.Discount)
	}

	var exchangeCredit float64
	if in.Exchange != nil {
		exchangeCredit = in.Exchange.CreditValue()
	}

	finalTotal := totals.Subtotal + totals.GST - discountAmount - exchangeCredit

	result := SettlementResult{
		Items:          items,
		Subtotal:       totals.Subtotal,
		GST:            totals.GST,
		DiscountAmount: discountAmount,
		ExchangeCredit: exchangeCredit,
		FinalTotal:     finalTotal,
	}

	if fallbackUsed {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnRateFallback,
			Message: "one or more items were priced with the default gold rate; amounts are estimates",
		})
	}

	// A negative payable total means the discount or exchange credit exceeds
	// what the customer owes. Block confirmation, never crash.
	if finalTotal < -Epsilon {
		overrun := -finalTotal
		result.NegativePayable = true
		result.Overrun = overrun
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnNegativePayable,
			Message: fmt.Sprintf("discount and exchange credit exceed the payable total by %.2f; redo the split before confirming", overrun),
			Amount:  overrun,
		})
		result.FinalTotal = finalTotal
		result.Split = Rebalance(in.Split, 0)
		result.SplitValid = false
		return result
	}

	payable := clampNonNegative(finalTotal)
	result.FinalTotal = payable
	result.Split = Rebalance(in.Split, payable)
	result.SplitValid = Validate(result.Split)
	if !result.SplitValid {
		result.Warnings = append(result.Warnings, Warning{
			Code:    WarnSplitMismatch,
			Message: "payment channels do not reconcile to the payable total",
		})
	}
	return result
}
