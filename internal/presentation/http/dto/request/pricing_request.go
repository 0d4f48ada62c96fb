package request

import (
	"github.com/google/uuid"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
)

// QuoteLineRequest is one cart line in a quote or checkout request. Catalog
// lines reference a product; ad-hoc lines carry the pricing fields inline.
type QuoteLineRequest struct {
	ProductID         *uuid.UUID `json:"product_id"`
	Quantity          int        `json:"quantity" binding:"min=0"`
	TotalWeightGrams  float64    `json:"total_weight_grams"`
	LessWeightGrams   float64    `json:"less_weight_grams"`
	MaterialType      string     `json:"material_type"`
	MakingRatePerGram float64    `json:"making_rate_per_gram"`
	HasStones         bool       `json:"has_stones"`
	StoneCaratWeight  float64    `json:"stone_carat_weight"`
	StoneRatePerCarat float64    `json:"stone_rate_per_carat"`
	StoneQuantity     int        `json:"stone_quantity"`
	VACharges         float64    `json:"va_charges"`
}

// QuoteRequest represents a stateless settlement quote request
type QuoteRequest struct {
	Lines      []QuoteLineRequest    `json:"lines" binding:"required,min=1"`
	GSTPercent *float64              `json:"gst_percent"`
	Discount   *pricing.DiscountSpec `json:"discount"`
	Exchange   *pricing.ExchangeGold `json:"exchange"`
	Split      pricing.PaymentSplit  `json:"split"`
}

// CheckoutRequest represents an order confirmation request. It carries the
// same settlement inputs as a quote plus the customer binding.
type CheckoutRequest struct {
	CustomerID *uuid.UUID            `json:"customer_id"`
	Lines      []QuoteLineRequest    `json:"lines" binding:"required,min=1"`
	GSTPercent *float64              `json:"gst_percent"`
	Discount   *pricing.DiscountSpec `json:"discount"`
	Exchange   *pricing.ExchangeGold `json:"exchange"`
	Split      pricing.PaymentSplit  `json:"split"`
}
