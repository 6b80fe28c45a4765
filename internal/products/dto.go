package products

import "github.com/shopspring/decimal"

// ProductInput holds the validated payload for create and full-replace update.
// The edit form always submits every field, so there is one input shape for
// both operations.
type ProductInput struct {
	Name          string
	Category      string
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	StockQuantity int
	MinStockAlert int
}
