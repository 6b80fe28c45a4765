package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
)

// Totals is the summed revenue and profit of a set of sales.
type Totals struct {
	Revenue decimal.Decimal `gorm:"column:revenue"`
	Profit  decimal.Decimal `gorm:"column:profit"`
}

// Repository implements dashboard aggregate queries on GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CountActiveProducts returns the number of products not in the trash.
func (r *Repository) CountActiveProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Scopes(models.Active).
		Count(&count).
		Error
	return count, err
}

// CountLowStockProducts returns the number of active products sitting at or
// below their alert threshold.
func (r *Repository) CountLowStockProducts(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Scopes(models.Active).
		Where("stock_quantity <= min_stock_alert").
		Count(&count).
		Error
	return count, err
}

// TotalsSince sums revenue and profit over active sales dated at or after
// since. Empty windows coalesce to zero rather than NULL.
func (r *Repository) TotalsSince(ctx context.Context, since time.Time) (Totals, error) {
	var totals Totals
	err := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS revenue, COALESCE(SUM(profit), 0) AS profit").
		Scopes(models.Active).
		Where("sale_date >= ?", since).
		Scan(&totals).
		Error
	return totals, err
}
