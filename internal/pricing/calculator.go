package pricing

// GrossPriceInput holds the inputs for the product-definition price
// calculator. It works from gross weight and a making percentage instead of a
// per-cart-line net weight.
type GrossPriceInput struct {
	GrossWeightGrams  float64 `json:"gross_weight_grams"`
	MakingPercentage  float64 `json:"making_percentage"`
	LabourRatePerGram float64 `json:"labour_rate_per_gram"`
	GoldRatePerGram   float64 `json:"gold_rate_per_gram"`
	KundanPrice       float64 `json:"kundan_price"`
	KundanWeightGrams float64 `json:"kundan_weight_grams"`
	JarkanPrice       float64 `json:"jarkan_price"`
	JarkanWeightGrams float64 `json:"jarkan_weight_grams"`
}

// GrossPriceResult is the breakdown produced by CalculateGrossPrice.
type GrossPriceResult struct {
	MakingWeight         float64 `json:"making_weight"`
	NewWeight            float64 `json:"new_weight"`
	LabourCharges        float64 `json:"labour_charges"`
	EffectiveMetalWeight float64 `json:"effective_metal_weight"`
	MetalPrice           float64 `json:"metal_price"`
	TotalPrice           float64 `json:"total_price"`
}

// CalculateGrossPrice computes a product price from gross weight, making
// percentage, labour rate and kundan/jarkan stone setting costs. The kundan
// and jarkan weights are excluded from the metal-weight basis while their
// prices are added back as flat costs. Pure function: identical inputs always
// yield identical results.
func CalculateGrossPrice(in GrossPriceInput) GrossPriceResult {
	gross := clampNonNegative(in.GrossWeightGrams)

	pct := in.MakingPercentage
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}

	makingWeight := gross * pct / 100
	newWeight := gross + makingWeight
	labourCharges := clampNonNegative(in.LabourRatePerGram) * newWeight

	effectiveMetalWeight := newWeight - clampNonNegative(in.JarkanWeightGrams) - clampNonNegative(in.KundanWeightGrams)
	if effectiveMetalWeight < 0 {
		effectiveMetalWeight = 0
	}

	metalPrice := effectiveMetalWeight * clampNonNegative(in.GoldRatePerGram)
	totalPrice := metalPrice + clampNonNegative(in.KundanPrice) + clampNonNegative(in.JarkanPrice) + labourCharges

	return GrossPriceResult{
		MakingWeight:         makingWeight,
		NewWeight:            newWeight,
		LabourCharges:        labourCharges,
		EffectiveMetalWeight: effectiveMetalWeight,
		MetalPrice:           metalPrice,
		TotalPrice:           totalPrice,
	}
}
