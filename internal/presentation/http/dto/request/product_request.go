package request

import "github.com/google/uuid"

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	CategoryID        *uuid.UUID `json:"category_id"`
	Name              string     `json:"name" binding:"required,min=2,max=255"`
	Code              string     `json:"code" binding:"omitempty,max=100"`
	MaterialName      string     `json:"material_name" binding:"required,max=100"`
	MaterialType      string     `json:"material_type" binding:"required,max=50"`
	GrossWeightGrams  float64    `json:"gross_weight_grams" binding:"min=0"`
	LessWeightGrams   float64    `json:"less_weight_grams" binding:"min=0"`
	MakingRatePerGram float64    `json:"making_rate_per_gram" binding:"min=0"`
	HasStones         bool       `json:"has_stones"`
	StoneCaratWeight  float64    `json:"stone_carat_weight" binding:"min=0"`
	StoneRatePerCarat float64    `json:"stone_rate_per_carat" binding:"min=0"`
	StoneQuantity     int        `json:"stone_quantity" binding:"min=0"`
	VACharges         float64    `json:"va_charges" binding:"min=0"`
	Quantity          int        `json:"quantity" binding:"min=0"`
	QuantityAlert     int        `json:"quantity_alert" binding:"min=0"`
	Notes             *string    `json:"notes"`
}

// UpdateProductRequest represents a product update request
type UpdateProductRequest struct {
	CategoryID        *uuid.UUID `json:"category_id"`
	Name              *string    `json:"name" binding:"omitempty,min=2,max=255"`
	MaterialName      *string    `json:"material_name" binding:"omitempty,max=100"`
	MaterialType      *string    `json:"material_type" binding:"omitempty,max=50"`
	GrossWeightGrams  *float64   `json:"gross_weight_grams" binding:"omitempty,min=0"`
	LessWeightGrams   *float64   `json:"less_weight_grams" binding:"omitempty,min=0"`
	MakingRatePerGram *float64   `json:"making_rate_per_gram" binding:"omitempty,min=0"`
	HasStones         *bool      `json:"has_stones"`
	StoneCaratWeight  *float64   `json:"stone_carat_weight" binding:"omitempty,min=0"`
	StoneRatePerCarat *float64   `json:"stone_rate_per_carat" binding:"omitempty,min=0"`
	StoneQuantity     *int       `json:"stone_quantity" binding:"omitempty,min=0"`
	VACharges         *float64   `json:"va_charges" binding:"omitempty,min=0"`
	Quantity          *int       `json:"quantity" binding:"omitempty,min=0"`
	QuantityAlert     *int       `json:"quantity_alert" binding:"omitempty,min=0"`
	Notes             *string    `json:"notes"`
}

// ProductFilterRequest represents product filter parameters
type ProductFilterRequest struct {
	Search       string `form:"search"`
	CategoryID   string `form:"category_id"`
	MaterialType string `form:"material_type"`
	LowStock     bool   `form:"low_stock"`
	Page         int    `form:"page"`
	PerPage      int    `form:"per_page"`
}
