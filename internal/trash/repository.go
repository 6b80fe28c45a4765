package trash

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
)

// Repository implements trash transitions on GORM. Every transition is one
// guarded statement: the WHERE clause encodes the legal source state, so an
// illegal transition simply matches zero rows.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transition fires op on one record of the given kind. Returns true when a
// row actually moved, false when the record was absent or in the wrong state.
func (r *Repository) Transition(ctx context.Context, kind Kind, op Op, id uuid.UUID) (bool, error) {
	guard, err := sourceCondition(op)
	if err != nil {
		return false, err
	}

	tx := r.db.WithContext(ctx).Model(kind.model()).Where("id = ?", id).Where(guard)

	var res *gorm.DB
	switch op {
	case OpSoftDelete:
		now := time.Now().UTC()
		res = tx.Updates(map[string]any{"deleted_at": &now, "updated_at": now})
	case OpRestore:
		res = tx.Updates(map[string]any{"deleted_at": nil, "updated_at": time.Now().UTC()})
	default: // OpPurge
		res = r.db.WithContext(ctx).Where("id = ?", id).Where(guard).Delete(kind.model())
	}

	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// ClearActiveSales soft-deletes every active sale in one statement and
// returns how many moved. Products and their stock are untouched.
func (r *Repository) ClearActiveSales(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	res := r.db.WithContext(ctx).
		Model(&models.Sale{}).
		Scopes(models.Active).
		Updates(map[string]any{"deleted_at": &now, "updated_at": now})
	return res.RowsAffected, res.Error
}

// ListTrashedProducts returns soft-deleted products, newest deletion first.
func (r *Repository) ListTrashedProducts(ctx context.Context) ([]models.Product, error) {
	var rows []models.Product
	err := r.db.WithContext(ctx).
		Scopes(models.Trashed).
		Order("deleted_at DESC").
		Find(&rows).
		Error
	return rows, err
}

// ListTrashedSales returns soft-deleted sales, newest deletion first.
func (r *Repository) ListTrashedSales(ctx context.Context) ([]models.Sale, error) {
	var rows []models.Sale
	err := r.db.WithContext(ctx).
		Scopes(models.Trashed).
		Order("deleted_at DESC").
		Find(&rows).
		Error
	return rows, err
}
