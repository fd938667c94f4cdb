package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sandwichapi/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, log *zap.Logger, resources service.ResourceService, sandwiches service.SandwichService) {
	// Readiness: checks DB connectivity only
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	v := NewValidator()
	NewResourceHandler(resources, v, log).Register(app, "/resources")
	NewSandwichHandler(sandwiches, v, log).Register(app, "/sandwiches")
}

// Metrics serves the Prometheus exposition format for g.
func Metrics(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
