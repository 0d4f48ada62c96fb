package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/domain/enum"
	"github.com/Humble-Coders/Gagan-Jewellers-Desktop-sub001/internal/pricing"
)

// Order is a confirmed settlement persisted with its full monetary
// breakdown: subtotal, discount, GST, exchange credit, final total and the
// payment split. Only confirmed settlements are ever written; abandoned
// carts leave no rows behind.
type Order struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID         `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	OrderDate     time.Time          `gorm:"type:date;not null" json:"order_date"`
	OrderStatus   enum.OrderStatus   `gorm:"default:0" json:"order_status"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	InvoiceNo     string             `gorm:"size:100;unique;not null" json:"invoice_no"`
	TotalProducts int                `gorm:"default:0" json:"total_products"`

	// Settlement breakdown
	Subtotal       float64              `gorm:"type:decimal(12,2);default:0" json:"subtotal"`
	DiscountMode   pricing.DiscountMode `gorm:"default:0" json:"discount_mode"`
	DiscountValue  float64              `gorm:"type:decimal(12,2);default:0" json:"discount_value"`
	DiscountAmount float64              `gorm:"type:decimal(12,2);default:0" json:"discount_amount"`
	GST            float64              `gorm:"type:decimal(12,2);default:0" json:"gst"`
	FinalTotal     float64              `gorm:"type:decimal(12,2);default:0" json:"final_total"`

	// Exchange gold credit
	ExchangeWeightGrams float64 `gorm:"type:decimal(10,3);default:0" json:"exchange_weight_grams"`
	ExchangePurity      string  `gorm:"size:50" json:"exchange_purity,omitempty"`
	ExchangeRatePerGram float64 `gorm:"type:decimal(10,2);default:0" json:"exchange_rate_per_gram"`
	ExchangeCredit      float64 `gorm:"type:decimal(12,2);default:0" json:"exchange_credit"`

	// Payment split
	CashAmount   float64 `gorm:"type:decimal(12,2);default:0" json:"cash_amount"`
	CardAmount   float64 `gorm:"type:decimal(12,2);default:0" json:"card_amount"`
	BankAmount   float64 `gorm:"type:decimal(12,2);default:0" json:"bank_amount"`
	OnlineAmount float64 `gorm:"type:decimal(12,2);default:0" json:"online_amount"`
	DueAmount    float64 `gorm:"type:decimal(12,2);default:0" json:"due_amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User        `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer   `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Split reconstructs the persisted payment split for revalidation.
func (o *Order) Split() pricing.PaymentSplit {
	return pricing.PaymentSplit{
		Cash:        o.CashAmount,
		Card:        o.CardAmount,
		Bank:        o.BankAmount,
		Online:      o.OnlineAmount,
		Due:         o.DueAmount,
		TotalAmount: o.FinalTotal,
	}
}

// OrderItem is a line item snapshot: the priced breakdown of one product at
// the moment of confirmation, independent of later catalog or rate edits.
// ProductID is nil for ad-hoc lines sold outside the catalog.
type OrderItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	OrderID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Quantity  int        `gorm:"not null" json:"quantity"`

	NetWeightGrams float64 `gorm:"type:decimal(10,3);default:0" json:"net_weight_grams"`
	MaterialRate   float64 `gorm:"type:decimal(10,2);default:0" json:"material_rate"`
	MaterialCost   float64 `gorm:"type:decimal(12,2);default:0" json:"material_cost"`
	MakingCharges  float64 `gorm:"type:decimal(12,2);default:0" json:"making_charges"`
	StoneAmount    float64 `gorm:"type:decimal(12,2);default:0" json:"stone_amount"`
	VACharges      float64 `gorm:"type:decimal(12,2);default:0" json:"va_charges"`
	LineTotal      float64 `gorm:"type:decimal(12,2);not null" json:"line_total"`
	RateFallback   bool    `gorm:"default:false" json:"rate_fallback"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (oi *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if oi.ID == uuid.Nil {
		oi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
