package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Monetary fields serialize as bare JSON numbers, matching the storefront
// client's expectations.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Sale is the financial record of one transaction. ProductID is a weak
// reference: the name and unit prices are snapshotted at sale time, so later
// product edits or deletion never rewrite sale history. There is deliberately
// no FK constraint, a purged product leaves its sales intact.
type Sale struct {
	ID                uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProductID         uuid.UUID       `gorm:"column:product_id;type:uuid;not null" json:"product_id"`
	ProductName       string          `gorm:"column:product_name;not null" json:"product_name"`
	QuantitySold      int             `gorm:"column:quantity_sold;not null" json:"quantity_sold"`
	UnitPurchasePrice decimal.Decimal `gorm:"column:unit_purchase_price;type:decimal(10,2);not null" json:"unit_purchase_price"`
	UnitSalePrice     decimal.Decimal `gorm:"column:unit_sale_price;type:decimal(10,2);not null" json:"unit_sale_price"`
	TotalAmount       decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	Profit            decimal.Decimal `gorm:"column:profit;type:decimal(10,2);not null" json:"profit"`
	SaleDate          time.Time       `gorm:"column:sale_date;autoCreateTime" json:"sale_date"`
	DeletedAt         *time.Time      `gorm:"column:deleted_at" json:"deleted_at,omitempty"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// IsTrashed reports whether the sale is soft-deleted.
func (s Sale) IsTrashed() bool {
	return s.DeletedAt != nil
}
