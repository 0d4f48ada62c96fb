package pricing

import "strings"

// Rate represents a single metal rate entry: price per gram for a
// (material name, material type) pair, e.g. ("Gold", "22K").
type Rate struct {
	MaterialName string  `json:"material_name"`
	MaterialType string  `json:"material_type"`
	PricePerGram float64 `json:"price_per_gram"`
}

// RateQuote is the result of a rate lookup. Fallback is true when no matching
// rate was found and the default gold rate was used instead, so callers can
// flag estimated prices.
type RateQuote struct {
	PricePerGram float64 `json:"price_per_gram"`
	Fallback     bool    `json:"fallback"`
}

// RateTable is a read-only snapshot of metal rates used for one pricing
// computation. It is built once per transaction and never mutated, so pricing
// functions stay referentially transparent.
type RateTable struct {
	rates           []Rate
	defaultGoldRate float64
}

// NewRateTable creates a rate table snapshot. defaultGoldRate is the degraded
// mode price per gram used when no rate matches a lookup.
func NewRateTable(rates []Rate, defaultGoldRate float64) *RateTable {
	if defaultGoldRate < 0 {
		defaultGoldRate = 0
	}
	snapshot := make([]Rate, len(rates))
	copy(snapshot, rates)
	return &RateTable{rates: snapshot, defaultGoldRate: defaultGoldRate}
}

// Len returns the number of rate entries in the snapshot.
func (t *RateTable) Len() int {
	return len(t.rates)
}

// Lookup resolves the price per gram for a material type. Resolution order:
//  1. exact case-insensitive match on material type (e.g. "22K")
//  2. exact case-insensitive match on material name
//  3. substring match on "gold"/"silver" within the queried type
//  4. default gold rate (Fallback=true)
func (t *RateTable) Lookup(materialType string) RateQuote {
	query := strings.TrimSpace(materialType)

	for _, r := range t.rates {
		if strings.EqualFold(r.MaterialType, query) {
			return RateQuote{PricePerGram: clampNonNegative(r.PricePerGram)}
		}
	}
	for _, r := range t.rates {
		if strings.EqualFold(r.MaterialName, query) {
			return RateQuote{PricePerGram: clampNonNegative(r.PricePerGram)}
		}
	}

	lower := strings.ToLower(query)
	for _, keyword := range []string{"gold", "silver"} {
		if !strings.Contains(lower, keyword) {
			continue
		}
		for _, r := range t.rates {
			if strings.Contains(strings.ToLower(r.MaterialName), keyword) ||
				strings.Contains(strings.ToLower(r.MaterialType), keyword) {
				return RateQuote{PricePerGram: clampNonNegative(r.PricePerGram)}
			}
		}
	}

	return RateQuote{PricePerGram: t.defaultGoldRate, Fallback: true}
}

// clampNonNegative floors negative values to zero. Negative rates and weights
// are lenient-input conditions, not hard errors.
func clampNonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
