package controllers

import (
	"net/http"

	"github.com/lbarreto/stockpilot-backend/api/responses"
	dashsvc "github.com/lbarreto/stockpilot-backend/internal/dashboard"
	pkgerrors "github.com/lbarreto/stockpilot-backend/pkg/errors"
	"github.com/lbarreto/stockpilot-backend/pkg/logger"
)

// DashboardStats returns the aggregate summary for the storefront dashboard.
func DashboardStats(svc dashsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		stats, err := svc.Stats(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}
