package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

// RegisterRoutes registers the metrics routes with the Fiber app and hooks
// the catalog collector into the given Prometheus registry.
func RegisterRoutes(app *fiber.App, service *Service, collector *CatalogCollector, registry *prometheus.Registry) {
	handler := NewHandler(service)

	registry.MustRegister(collector)

	promHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)
	app.Get("/metrics", func(c *fiber.Ctx) error {
		promHandler(c.Context())
		return nil
	})

	api := app.Group("/api/metrics")
	api.Get("/overview", handler.GetOverview)
}
