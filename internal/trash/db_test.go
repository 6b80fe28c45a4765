package trash

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
)

var testDBSeq int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:trash_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	for _, schema := range []string{
		`CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  purchase_price NUMERIC NOT NULL DEFAULT 0,
  sale_price NUMERIC NOT NULL DEFAULT 0,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  min_stock_alert INTEGER NOT NULL DEFAULT 1,
  deleted_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS sales (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  quantity_sold INTEGER NOT NULL,
  unit_purchase_price NUMERIC NOT NULL,
  unit_sale_price NUMERIC NOT NULL,
  total_amount NUMERIC NOT NULL,
  profit NUMERIC NOT NULL,
  sale_date DATETIME,
  deleted_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
	} {
		require.NoError(t, db.Exec(schema).Error)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, deleted bool) *models.Product {
	t.Helper()
	p := &models.Product{
		ID:            uuid.New(),
		Name:          "espresso beans",
		Category:      "coffee",
		PurchasePrice: decimal.NewFromInt(10),
		SalePrice:     decimal.NewFromInt(15),
		StockQuantity: 20,
		MinStockAlert: 5,
	}
	if deleted {
		now := time.Now().UTC()
		p.DeletedAt = &now
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func seedSale(t *testing.T, db *gorm.DB, saleDate time.Time, deletedAt *time.Time) *models.Sale {
	t.Helper()
	s := &models.Sale{
		ID:                uuid.New(),
		ProductID:         uuid.New(),
		ProductName:       "espresso beans",
		QuantitySold:      2,
		UnitPurchasePrice: decimal.NewFromInt(10),
		UnitSalePrice:     decimal.NewFromInt(15),
		TotalAmount:       decimal.NewFromInt(30),
		Profit:            decimal.NewFromInt(10),
		SaleDate:          saleDate,
		DeletedAt:         deletedAt,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}
