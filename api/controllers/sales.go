package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/lbarreto/stockpilot-backend/api/responses"
	"github.com/lbarreto/stockpilot-backend/api/validators"
	salesvc "github.com/lbarreto/stockpilot-backend/internal/sales"
	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
	"github.com/lbarreto/stockpilot-backend/pkg/logger"
	"github.com/lbarreto/stockpilot-backend/pkg/pagination"
)

type recordSaleRequest struct {
	ProductID    string `json:"product_id" validate:"required"`
	QuantitySold int    `json:"quantity_sold" validate:"required,min=1"`
}

// ListSales returns recent active sales, newest first, capped at the listing
// limit.
func ListSales(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListSales(r.Context(), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rows)
	}
}

// RecordSale processes one sale transaction and returns the computed receipt.
func RecordSale(svc salesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sale service unavailable"))
			return
		}

		var payload recordSaleRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		productID, err := uuid.Parse(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(ctx, productID.String())
		}

		receipt, err := svc.RecordSale(ctx, productID, payload.QuantitySold)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{
			"success":      true,
			"sale_id":      receipt.SaleID,
			"total_amount": receipt.TotalAmount,
			"profit":       receipt.Profit,
		})
	}
}
