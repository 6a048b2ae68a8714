package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouterConfig collects the handlers and settings the router needs
type RouterConfig struct {
	Customers      *CustomerHandler
	Exports        *ExportHandler
	Health         *HealthHandler
	AllowedOrigins []string
}

// NewRouter wires the HTTP routes
func NewRouter(cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RecoveryMiddleware(logger))
	r.Use(LoggingMiddleware(logger))
	r.Use(CORSMiddleware(cfg.AllowedOrigins))

	r.Get("/health", cfg.Health.Health)
	r.Get("/translations/{lang}", GetTranslations)
	r.Post("/expiry/preview", cfg.Customers.PreviewExpiry)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", cfg.Customers.ListCustomers)
		r.Post("/", cfg.Customers.CreateCustomer)

		r.Get("/export", cfg.Exports.DownloadExport)
		r.Post("/export/jobs", cfg.Exports.QueueExport)
		r.Post("/import", cfg.Exports.ImportCustomers)

		r.Get("/{id}", cfg.Customers.GetCustomer)
		r.Put("/{id}", cfg.Customers.UpdateCustomer)
		r.Delete("/{id}", cfg.Customers.DeleteCustomer)
	})

	return r
}
