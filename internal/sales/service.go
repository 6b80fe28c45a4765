package sales

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/lbarreto/stockpilot-backend/internal/products"
	"github.com/lbarreto/stockpilot-backend/pkg/db"
	"github.com/lbarreto/stockpilot-backend/pkg/db/models"
	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
)

// Receipt carries the computed financials of one recorded sale back to the
// caller.
type Receipt struct {
	SaleID      uuid.UUID
	TotalAmount decimal.Decimal
	Profit      decimal.Decimal
}

// Service exposes the sale transaction processor.
type Service interface {
	RecordSale(ctx context.Context, productID uuid.UUID, quantitySold int) (*Receipt, error)
	ListSales(ctx context.Context, limit int) ([]models.Sale, error)
}

type service struct {
	repo     *Repository
	products *products.Repository
	dbClient *db.Client
}

// NewService constructs a sale service instance.
func NewService(repo *Repository, productRepo *products.Repository, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sale repository required")
	}
	if productRepo == nil {
		return nil, fmt.Errorf("product repository required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, products: productRepo, dbClient: dbClient}, nil
}

// RecordSale applies a sale against a product: it snapshots the product's name
// and prices into a new sale row and decrements the stock, atomically. Either
// both writes commit or neither does; a conditional decrement guards the
// stock floor against concurrent sales of the same product.
func (s *service) RecordSale(ctx context.Context, productID uuid.UUID, quantitySold int) (*Receipt, error) {
	if quantitySold < 1 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity sold must be at least 1")
	}

	var receipt *Receipt
	err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		product, err := s.products.WithTx(tx).FindActiveByID(ctx, productID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
			}
			return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "loading product")
		}

		if product.StockQuantity < quantitySold {
			return insufficientStock(product.StockQuantity, quantitySold)
		}

		qty := decimal.NewFromInt(int64(quantitySold))
		sale := &models.Sale{
			ProductID:         product.ID,
			ProductName:       product.Name,
			QuantitySold:      quantitySold,
			UnitPurchasePrice: product.PurchasePrice,
			UnitSalePrice:     product.SalePrice,
			TotalAmount:       product.SalePrice.Mul(qty),
			Profit:            product.SalePrice.Sub(product.PurchasePrice).Mul(qty),
		}

		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, sale); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "recording sale")
		}

		// The guard re-checks stock under the transaction: if another sale
		// drained the product since the read above, nothing matches and the
		// whole transaction rolls back.
		decremented, err := txRepo.DecrementStock(ctx, product.ID, quantitySold)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "decrementing stock")
		}
		if !decremented {
			return insufficientStock(product.StockQuantity, quantitySold)
		}

		receipt = &Receipt{
			SaleID:      sale.ID,
			TotalAmount: sale.TotalAmount,
			Profit:      sale.Profit,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *service) ListSales(ctx context.Context, limit int) ([]models.Sale, error) {
	rows, err := s.repo.ListActive(ctx, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "listing sales")
	}
	return rows, nil
}

func insufficientStock(available, requested int) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeInsufficientStock, "insufficient stock").
		WithDetails(map[string]int{"available": available, "requested": requested})
}
