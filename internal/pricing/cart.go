package pricing

// CartTotals holds the pre-discount aggregate of a cart.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	GST      float64 `json:"gst"`
}

// Aggregate sums priced line items into a subtotal and applies GST.
// gstPercent is the configured flat GST percentage (e.g. 18 for 18%).
// An empty cart yields zero totals.
func Aggregate(items []ItemPrice, gstPercent float64) CartTotals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal
	}

	return CartTotals{
		Subtotal: subtotal,
		GST:      subtotal * clampNonNegative(gstPercent) / 100,
	}
}
