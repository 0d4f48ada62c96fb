package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
)

// Product represents a jewelry item in the catalog. Weight, material and
// stone attributes are the pricing inputs; everything else is display or
// stock-keeping data.
type Product struct {
	ID                uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID            uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	CategoryID        *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Slug              string         `gorm:"size:255;unique;not null" json:"slug"`
	Code              string         `gorm:"size:100;unique;not null" json:"code"`
	MaterialName      string         `gorm:"size:100;not null" json:"material_name"`
	MaterialType      string         `gorm:"size:50;not null" json:"material_type"`
	GrossWeightGrams  float64        `gorm:"type:decimal(10,3);default:0" json:"gross_weight_grams"`
	LessWeightGrams   float64        `gorm:"type:decimal(10,3);default:0" json:"less_weight_grams"`
	MakingRatePerGram float64        `gorm:"type:decimal(10,2);default:0" json:"making_rate_per_gram"`
	HasStones         bool           `gorm:"default:false" json:"has_stones"`
	StoneCaratWeight  float64        `gorm:"type:decimal(10,3);default:0" json:"stone_carat_weight"`
	StoneRatePerCarat float64        `gorm:"type:decimal(10,2);default:0" json:"stone_rate_per_carat"`
	StoneQuantity     int            `gorm:"default:0" json:"stone_quantity"`
	VACharges         float64        `gorm:"type:decimal(10,2);default:0" json:"va_charges"`
	Quantity          int            `gorm:"default:0" json:"quantity"`
	QuantityAlert     int            `gorm:"default:0" json:"quantity_alert"`
	Notes             *string        `gorm:"type:text" json:"notes,omitempty"`
	ProductImage      *string        `gorm:"size:255" json:"product_image,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// ToLineItem snapshots the product's pricing attributes into a cart line.
// The selected weight and quantity may be edited in the cart afterwards.
func (p *Product) ToLineItem(quantity int) pricing.LineItem {
	return pricing.LineItem{
		ProductID:         p.ID.String(),
		Quantity:          quantity,
		TotalWeightGrams:  p.GrossWeightGrams,
		LessWeightGrams:   p.LessWeightGrams,
		MaterialType:      p.MaterialType,
		MakingRatePerGram: p.MakingRatePerGram,
		HasStones:         p.HasStones,
		StoneCaratWeight:  p.StoneCaratWeight,
		StoneRatePerCarat: p.StoneRatePerCarat,
		StoneQuantity:     p.StoneQuantity,
		VACharges:         p.VACharges,
	}
}

// Category represents a product category (Rings, Chains, Bangles, ...).
// UserID is nil for the seeded defaults, which belong to no staff account.
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    *uuid.UUID     `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
