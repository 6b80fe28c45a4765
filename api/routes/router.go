package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lbarreto/stockpilot-backend/api/controllers"
	"github.com/lbarreto/stockpilot-backend/api/middleware"
	"github.com/lbarreto/stockpilot-backend/internal/dashboard"
	"github.com/lbarreto/stockpilot-backend/internal/products"
	"github.com/lbarreto/stockpilot-backend/internal/sales"
	"github.com/lbarreto/stockpilot-backend/internal/trash"
	"github.com/lbarreto/stockpilot-backend/pkg/config"
	"github.com/lbarreto/stockpilot-backend/pkg/db"
	"github.com/lbarreto/stockpilot-backend/pkg/logger"
	"github.com/lbarreto/stockpilot-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	httpMetrics *metrics.HTTPMetrics,
	productService products.Service,
	saleService sales.Service,
	trashService trash.Service,
	dashboardService dashboard.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if httpMetrics != nil {
		r.Use(httpMetrics.Middleware())
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Post("/", controllers.CreateProduct(productService, logg))
			r.Put("/{productID}", controllers.UpdateProduct(productService, logg))
			r.Delete("/{productID}", controllers.SoftDeleteProduct(trashService, logg))
		})

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.ListSales(saleService, logg))
			r.Post("/", controllers.RecordSale(saleService, logg))
			r.Delete("/clear-history", controllers.ClearSaleHistory(trashService, logg))
			r.Delete("/{saleID}", controllers.SoftDeleteSale(trashService, logg))
		})

		r.Get("/dashboard/stats", controllers.DashboardStats(dashboardService, logg))

		r.Route("/trash", func(r chi.Router) {
			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.ListTrashedProducts(trashService, logg))
				r.Post("/{productID}/restore", controllers.RestoreProduct(trashService, logg))
				r.Delete("/{productID}/permanent", controllers.PurgeProduct(trashService, logg))
			})
			r.Route("/sales", func(r chi.Router) {
				r.Get("/", controllers.ListTrashedSales(trashService, logg))
				r.Post("/{saleID}/restore", controllers.RestoreSale(trashService, logg))
				r.Delete("/{saleID}/permanent", controllers.PurgeSale(trashService, logg))
			})
		})
	})

	return r
}
