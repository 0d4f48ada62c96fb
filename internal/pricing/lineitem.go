package pricing

// LineItem is an immutable snapshot of a product at add-to-cart time.
// Quantity and the selected weight may change while the item sits in the
// cart; everything else is frozen from the catalog record.
type LineItem struct {
	ProductID         string  `json:"product_id"`
	Quantity          int     `json:"quantity"`
	TotalWeightGrams  float64 `json:"total_weight_grams"`
	LessWeightGrams   float64 `json:"less_weight_grams"`
	MaterialType      string  `json:"material_type"`
	MakingRatePerGram float64 `json:"making_rate_per_gram"`
	HasStones         bool    `json:"has_stones"`
	StoneCaratWeight  float64 `json:"stone_carat_weight"`
	StoneRatePerCarat float64 `json:"stone_rate_per_carat"`
	StoneQuantity     int     `json:"stone_quantity"`
	VACharges         float64 `json:"va_charges"`
}

// ItemPrice is the monetary breakdown of one priced cart line.
type ItemPrice struct {
	ProductID     string  `json:"product_id"`
	Quantity      int     `json:"quantity"`
	NetWeight     float64 `json:"net_weight"`
	MaterialRate  float64 `json:"material_rate"`
	MaterialCost  float64 `json:"material_cost"`
	MakingCharges float64 `json:"making_charges"`
	StoneAmount   float64 `json:"stone_amount"`
	VACharges     float64 `json:"va_charges"`
	LineTotal     float64 `json:"line_total"`
	RateFallback  bool    `json:"rate_fallback"`
}

// PriceItem computes the monetary value of a single cart line from product
// attributes and the current rate snapshot. Negative weights and rates are
// clamped to zero rather than rejected.
func PriceItem(item LineItem, rates *RateTable) ItemPrice {
	quote := rates.Lookup(item.MaterialType)

	netWeight := clampNonNegative(item.TotalWeightGrams) - clampNonNegative(item.LessWeightGrams)
	if netWeight < 0 {
		netWeight = 0
	}

	materialCost := netWeight * quote.PricePerGram
	makingCharges := netWeight * clampNonNegative(item.MakingRatePerGram)

	// All three stone factors must be positive for the stone amount to count.
	var stoneAmount float64
	if item.HasStones && item.StoneCaratWeight > 0 && item.StoneRatePerCarat > 0 && item.StoneQuantity > 0 {
		stoneAmount = item.StoneCaratWeight * item.StoneRatePerCarat * float64(item.StoneQuantity)
	}

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	vaCharges := clampNonNegative(item.VACharges)
	lineTotal := (materialCost + makingCharges + stoneAmount + vaCharges) * float64(quantity)

	return ItemPrice{
		ProductID:     item.ProductID,
		Quantity:      quantity,
		NetWeight:     netWeight,
		MaterialRate:  quote.PricePerGram,
		MaterialCost:  materialCost,
		MakingCharges: makingCharges,
		StoneAmount:   stoneAmount,
		VACharges:     vaCharges,
		LineTotal:     lineTotal,
		RateFallback:  quote.Fallback,
	}
}
