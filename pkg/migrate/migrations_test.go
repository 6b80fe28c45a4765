package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lbarreto/stockpilot-backend/pkg/migrate"
)

func TestMigrationsDirValidates(t *testing.T) {
	if err := migrate.ValidateDir("migrations"); err != nil {
		t.Fatalf("migrations dir failed validation: %v", err)
	}
}

func TestProductsMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_products_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"stock_quantity integer NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0)",
		"min_stock_alert integer NOT NULL DEFAULT 1 CHECK (min_stock_alert >= 1)",
		"deleted_at timestamptz",
		"idx_products_active_name",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSalesMigrationContainsSchema(t *testing.T) {
	content := readMigration(t, "*_create_sales_table.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS sales",
		"quantity_sold integer NOT NULL CHECK (quantity_sold >= 1)",
		"unit_purchase_price numeric(10,2) NOT NULL",
		"unit_sale_price numeric(10,2) NOT NULL",
		"idx_sales_active_sale_date",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
	if strings.Contains(content, "REFERENCES products") {
		t.Error("sales.product_id must stay a weak reference without an FK constraint")
	}
}

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %s", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}
