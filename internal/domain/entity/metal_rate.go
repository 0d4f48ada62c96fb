package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MetalRate represents the current price per gram for one material/purity
// pair, e.g. ("Gold", "22K"). Rates are updated from the rate-management
// screen; pricing reads a read-only snapshot of the whole table.
type MetalRate struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	MaterialName string    `gorm:"size:100;not null;uniqueIndex:idx_material" json:"material_name"`
	MaterialType string    `gorm:"size:50;not null;uniqueIndex:idx_material" json:"material_type"`
	PricePerGram float64   `gorm:"type:decimal(10,2);not null" json:"price_per_gram"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new metal rate
func (m *MetalRate) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MetalRate model
func (MetalRate) TableName() string {
	return "metal_rates"
}
