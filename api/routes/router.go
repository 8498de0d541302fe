package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/counterdesk/pos-backend/api/controllers"
	"github.com/counterdesk/pos-backend/api/middleware"
	"github.com/counterdesk/pos-backend/internal/cart"
	"github.com/counterdesk/pos-backend/internal/catalog"
	checkoutsvc "github.com/counterdesk/pos-backend/internal/checkout"
	"github.com/counterdesk/pos-backend/internal/reports"
	"github.com/counterdesk/pos-backend/pkg/config"
	"github.com/counterdesk/pos-backend/pkg/db"
	"github.com/counterdesk/pos-backend/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	metricsReg *prometheus.Registry,
	catalogService catalog.Service,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
	reportsService reports.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if metricsReg != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(metricsReg, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductList(catalogService, logg))
			r.Get("/available", controllers.ProductListAvailable(catalogService, logg))
			r.Post("/", controllers.ProductCreate(catalogService, logg))
			r.Put("/{productId}", controllers.ProductUpdate(catalogService, logg))
			r.Delete("/{productId}", controllers.ProductDelete(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Post("/items", controllers.CartAddItem(cartService, logg))
			r.Post("/items/{productId}/decrement", controllers.CartDecrementItem(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
		})

		r.Post("/checkout", controllers.Checkout(checkoutService, logg))

		r.Route("/reports", func(r chi.Router) {
			r.Get("/summary", controllers.ReportSummary(reportsService, logg))
			r.Get("/recent-sales", controllers.ReportRecentSales(reportsService, logg))
			r.Get("/all-time-total", controllers.ReportAllTimeTotal(reportsService, logg))
		})
	})

	return r
}
