package pricing

// ExchangeGold describes an old-gold exchange handed over by the customer,
// credited against the new purchase.
type ExchangeGold struct {
	WeightGrams float64 `json:"weight_grams"`
	Purity      string  `json:"purity"`
	RatePerGram float64 `json:"rate_per_gram"`
}

// CreditValue converts an exchange transaction into a monetary credit,
// clamped to be non-negative. A credit exceeding the payable total is handled
// downstream the same way as an over-discount.
func (e ExchangeGold) CreditValue() float64 {
	credit := clampNonNegative(e.WeightGrams) * clampNonNegative(e.RatePerGram)
	return clampNonNegative(credit)
}
