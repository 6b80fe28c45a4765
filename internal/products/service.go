package products

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
)

// Service exposes product catalog management.
type Service interface {
	CreateProduct(ctx context.Context, input ProductInput) (uuid.UUID, error)
	UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) error
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type service struct {
	repo ProductRepository
}

// NewService constructs a product service instance.
func NewService(repo ProductRepository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) CreateProduct(ctx context.Context, input ProductInput) (uuid.UUID, error) {
	normalized, err := normalizeInput(input)
	if err != nil {
		return uuid.Nil, err
	}

	product := &models.Product{
		Name:          normalized.Name,
		Category:      normalized.Category,
		PurchasePrice: normalized.PurchasePrice,
		SalePrice:     normalized.SalePrice,
		StockQuantity: normalized.StockQuantity,
		MinStockAlert: normalized.MinStockAlert,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "creating product")
	}
	return product.ID, nil
}

func (s *service) UpdateProduct(ctx context.Context, productID uuid.UUID, input ProductInput) error {
	normalized, err := normalizeInput(input)
	if err != nil {
		return err
	}

	product := &models.Product{
		ID:            productID,
		Name:          normalized.Name,
		Category:      normalized.Category,
		PurchasePrice: normalized.PurchasePrice,
		SalePrice:     normalized.SalePrice,
		StockQuantity: normalized.StockQuantity,
		MinStockAlert: normalized.MinStockAlert,
	}
	if err := s.repo.UpdateActive(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "updating product")
	}
	return nil
}

func (s *service) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing products")
	}
	return rows, nil
}

// normalizeInput applies the persistence-independent validation rules: name
// and category non-empty, prices non-negative, stock non-negative, alert
// threshold at least one.
func normalizeInput(input ProductInput) (ProductInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Category = strings.TrimSpace(input.Category)

	switch {
	case input.Name == "":
		return input, pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	case input.Category == "":
		return input, pkgerrors.New(pkgerrors.CodeValidation, "product category is required")
	case input.PurchasePrice.IsNegative():
		return input, pkgerrors.New(pkgerrors.CodeValidation, "purchase price must not be negative")
	case input.SalePrice.IsNegative():
		return input, pkgerrors.New(pkgerrors.CodeValidation, "sale price must not be negative")
	case input.StockQuantity < 0:
		return input, pkgerrors.New(pkgerrors.CodeValidation, "stock quantity must not be negative")
	case input.MinStockAlert < 1:
		return input, pkgerrors.New(pkgerrors.CodeValidation, "minimum stock alert must be at least 1")
	}
	return input, nil
}
