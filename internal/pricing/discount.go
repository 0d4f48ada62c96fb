package pricing

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// DiscountMode selects how a discount value is interpreted.
type DiscountMode int

const (
	// DiscountAmount treats the value as a flat amount off the subtotal.
	DiscountAmount DiscountMode = 0
	// DiscountPercentage treats the value as a percentage of the subtotal.
	DiscountPercentage DiscountMode = 1
	// DiscountTotalPayable treats the value as the desired final payable
	// amount; the discount needed to reach it is derived.
	DiscountTotalPayable DiscountMode = 2
)

func (m DiscountMode) String() string {
	names := [...]string{"Amount", "Percentage", "TotalPayable"}
	if int(m) < 0 || int(m) >= len(names) {
		return "Amount"
	}
	return names[m]
}

func (m DiscountMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *DiscountMode) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = DiscountMode(i)
		return nil
	}
	switch str {
	case "Amount":
		*m = DiscountAmount
	case "Percentage":
		*m = DiscountPercentage
	case "TotalPayable":
		*m = DiscountTotalPayable
	default:
		return fmt.Errorf("unknown discount mode %q", str)
	}
	return nil
}

func (m DiscountMode) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *DiscountMode) Scan(value interface{}) error {
	if value == nil {
		*m = DiscountAmount
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = DiscountMode(v)
	case int:
		*m = DiscountMode(v)
	}
	return nil
}

// DiscountSpec describes one active discount. Value semantics depend on Mode.
type DiscountSpec struct {
	Mode  DiscountMode `json:"mode"`
	Value float64      `json:"value"`
}

// ApplyDiscount derives the discount amount for a subtotal.
//
// Amount mode is capped at the subtotal so the payable never goes negative
// from the discount alone. Percentage mode is intentionally not clamped to
// [0,100]; overruns surface downstream as a negative-payable warning rather
// than being rejected here. TotalPayable mode derives the discount needed to
// reach the requested final amount.
func ApplyDiscount(subtotal float64, spec DiscountSpec) float64 {
	switch spec.Mode {
	case DiscountPercentage:
		return subtotal * spec.Value / 100
	case DiscountTotalPayable:
		discount := subtotal - spec.Value
		if discount < 0 {
			return 0
		}
		return discount
	default:
		if spec.Value > subtotal {
			return subtotal
		}
		return clampNonNegative(spec.Value)
	}
}
