package trash

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
)

// Service exposes the trash lifecycle for products and sales.
type Service interface {
	SoftDelete(ctx context.Context, kind Kind, id uuid.UUID) error
	Restore(ctx context.Context, kind Kind, id uuid.UUID) error
	PermanentlyDelete(ctx context.Context, kind Kind, id uuid.UUID) error
	ClearSaleHistory(ctx context.Context) (int64, error)
	ListTrashedProducts(ctx context.Context) ([]models.Product, error)
	ListTrashedSales(ctx context.Context) ([]models.Sale, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a trash service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("trash repository required")
	}
	return &service{repo: repo}, nil
}

// SoftDelete moves an active record into the trash. Deletion is purely a
// visibility flag: soft-deleting a sale never restores product stock, and a
// trashed product keeps its stock count.
func (s *service) SoftDelete(ctx context.Context, kind Kind, id uuid.UUID) error {
	return s.transition(ctx, kind, OpSoftDelete, id, "%s not found")
}

// Restore moves a trashed record back to active.
func (s *service) Restore(ctx context.Context, kind Kind, id uuid.UUID) error {
	return s.transition(ctx, kind, OpRestore, id, "%s not found in trash")
}

// PermanentlyDelete erases a trashed record. Active records are refused: the
// trash state is a mandatory stop before permanent loss.
func (s *service) PermanentlyDelete(ctx context.Context, kind Kind, id uuid.UUID) error {
	return s.transition(ctx, kind, OpPurge, id, "%s not found in trash")
}

func (s *service) transition(ctx context.Context, kind Kind, op Op, id uuid.UUID, notFoundFmt string) error {
	moved, err := s.repo.Transition(ctx, kind, op, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, fmt.Sprintf("%s %s", op, kind))
	}
	if !moved {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf(notFoundFmt, kind))
	}
	return nil
}

func (s *service) ClearSaleHistory(ctx context.Context) (int64, error) {
	count, err := s.repo.ClearActiveSales(ctx)
	if err != nil {
		return 0, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "clearing sale history")
	}
	return count, nil
}

func (s *service) ListTrashedProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.repo.ListTrashedProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing trashed products")
	}
	return rows, nil
}

func (s *service) ListTrashedSales(ctx context.Context) ([]models.Sale, error) {
	rows, err := s.repo.ListTrashedSales(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing trashed sales")
	}
	return rows, nil
}
