package controllers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/lbarreto/stockpilot-backend/api/responses"
	"github.com/lbarreto/stockpilot-backend/api/validators"
	trashsvc "github.com/lbarreto/stockpilot-backend/internal/trash"
	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
	"github.com/lbarreto/stockpilot-backend/pkg/logger"
)

// SoftDeleteProduct moves an active product into the trash.
func SoftDeleteProduct(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return trashAction(svc, logg, trashsvc.KindProduct, "productID", trashsvc.Service.SoftDelete)
}

// SoftDeleteSale moves an active sale into the trash.
func SoftDeleteSale(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return trashAction(svc, logg, trashsvc.KindSale, "saleID", trashsvc.Service.SoftDelete)
}

// RestoreProduct returns a trashed product to the active catalog.
func RestoreProduct(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return trashAction(svc, logg, trashsvc.KindProduct, "productID", trashsvc.Service.Restore)
}

// RestoreSale returns a trashed sale to the active history.
func RestoreSale(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return trashAction(svc, logg, trashsvc.KindSale, "saleID", trashsvc.Service.Restore)
}

// PurgeProduct removes a trashed product permanently.
func PurgeProduct(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return trashAction(svc, logg, trashsvc.KindProduct, "productID", trashsvc.Service.PermanentlyDelete)
}

// PurgeSale removes a trashed sale permanently.
func PurgeSale(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return trashAction(svc, logg, trashsvc.KindSale, "saleID", trashsvc.Service.PermanentlyDelete)
}

// ListTrashedProducts returns trashed products, newest deletion first.
func ListTrashedProducts(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trash service unavailable"))
			return
		}
		rows, err := svc.ListTrashedProducts(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// ListTrashedSales returns trashed sales, newest deletion first.
func ListTrashedSales(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trash service unavailable"))
			return
		}
		rows, err := svc.ListTrashedSales(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// ClearSaleHistory soft-deletes every active sale in one sweep.
func ClearSaleHistory(svc trashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trash service unavailable"))
			return
		}
		if _, err := svc.ClearSaleHistory(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"success": true})
	}
}

func trashAction(
	svc trashsvc.Service,
	logg *logger.Logger,
	kind trashsvc.Kind,
	param string,
	action func(trashsvc.Service, context.Context, trashsvc.Kind, uuid.UUID) error,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "trash service unavailable"))
			return
		}

		id, err := validators.ParseUUIDParam(r, param)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := action(svc, r.Context(), kind, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"success": true})
	}
}
