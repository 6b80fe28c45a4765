package products

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
)

// ProductRepository defines persistence operations for the product catalog.
// All listing reads go through the active scope; trash reads live in the
// trash package.
type ProductRepository interface {
	Create(context.Context, *models.Product) error
	FindActiveByID(context.Context, uuid.UUID) (*models.Product, error)
	ListActive(context.Context) ([]models.Product, error)
	UpdateActive(context.Context, *models.Product) error
}

// Repository implements ProductRepository on GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// Create inserts a new product row.
func (r *Repository) Create(ctx context.Context, product *models.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Create(product).Error
}

// FindActiveByID loads a product that is not in the trash.
func (r *Repository) FindActiveByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).
		Scopes(models.Active).
		First(&product, "id = ?", id).
		Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// ListActive returns all active products ordered by name.
func (r *Repository) ListActive(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Scopes(models.Active).
		Order("name").
		Find(&rows).
		Error
	return rows, err
}

// UpdateActive rewrites the editable fields of an active product and bumps
// updated_at. Returns gorm.ErrRecordNotFound when the product is missing or
// trashed.
func (r *Repository) UpdateActive(ctx context.Context, product *models.Product) error {
	res := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Scopes(models.Active).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":            product.Name,
			"category":        product.Category,
			"purchase_price":  product.PurchasePrice,
			"sale_price":      product.SalePrice,
			"stock_quantity":  product.StockQuantity,
			"min_stock_alert": product.MinStockAlert,
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
