package controllers

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/lbarreto/stockpilot-backend/api/responses"
	"github.com/lbarreto/stockpilot-backend/api/validators"
	productsvc "github.com/lbarreto/stockpilot-backend/internal/products"
	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
	"github.com/lbarreto/stockpilot-backend/pkg/logger"
)

type productRequest struct {
	Name          string          `json:"name" validate:"required"`
	Category      string          `json:"category" validate:"required"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity" validate:"min=0"`
	MinStockAlert int             `json:"min_stock_alert" validate:"required,min=1"`
}

func (r productRequest) toInput() productsvc.ProductInput {
	return productsvc.ProductInput{
		Name:          r.Name,
		Category:      r.Category,
		PurchasePrice: r.PurchasePrice,
		SalePrice:     r.SalePrice,
		StockQuantity: r.StockQuantity,
		MinStockAlert: r.MinStockAlert,
	}
}

// ListProducts returns the active catalog, ordered by name.
func ListProducts(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		rows, err := svc.ListProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// CreateProduct registers a new catalog item and returns its id.
func CreateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := svc.CreateProduct(r.Context(), payload.toInput())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"id": id})
	}
}

// UpdateProduct replaces every editable field of an active product.
func UpdateProduct(svc productsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, "productID")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload productRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, id.String())
		}
		if err := svc.UpdateProduct(ctx, id, payload.toInput()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"success": true})
	}
}
