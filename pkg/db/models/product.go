package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a single-location stocked item. Prices carry decimal(10,2)
// semantics; StockQuantity is mutated only by sale transactions and direct
// edits and never drops below zero.
type Product struct {
	ID            uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string          `gorm:"column:name;not null" json:"name"`
	Category      string          `gorm:"column:category;not null" json:"category"`
	PurchasePrice decimal.Decimal `gorm:"column:purchase_price;type:decimal(10,2);not null" json:"purchase_price"`
	SalePrice     decimal.Decimal `gorm:"column:sale_price;type:decimal(10,2);not null" json:"sale_price"`
	StockQuantity int             `gorm:"column:stock_quantity;not null;default:0" json:"stock_quantity"`
	MinStockAlert int             `gorm:"column:min_stock_alert;not null;default:1" json:"min_stock_alert"`
	DeletedAt     *time.Time      `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// IsLowStock reports whether the product sits at or below its alert threshold.
func (p Product) IsLowStock() bool {
	return p.StockQuantity <= p.MinStockAlert
}

// IsTrashed reports whether the product is soft-deleted.
func (p Product) IsTrashed() bool {
	return p.DeletedAt != nil
}
