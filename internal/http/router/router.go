package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"dealfinder/internal/apperr"
	"dealfinder/internal/config"
	"dealfinder/internal/http/handlers"
	"dealfinder/internal/http/middleware"
	applog "dealfinder/internal/log"
)

// ErrorHandler renders every error as an APIError body. Internal details
// are logged, never sent.
func ErrorHandler(c *fiber.Ctx, err error) error {
	apiErr := apperr.From(err)
	if apiErr.Status() >= fiber.StatusInternalServerError {
		applog.Error(c, "server.error", err, nil)
	}
	return c.Status(apiErr.Status()).JSON(apiErr)
}

// New builds the HTTP app. reg receives the request metrics; nil means the
// prometheus default registry.
func New(cfg config.Config, deps *handlers.Deps, reg *prometheus.Registry) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "dealfinder",
		BodyLimit:             cfg.BodyLimit,
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	// ---------- Middlewares ----------
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(applog.Timing())
	app.Use(logger.New(logger.Config{Output: log.Writer()}))
	app.Use(helmet.New(helmet.Config{CrossOriginResourcePolicy: "cross-origin"}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,HEAD,OPTIONS",
	}))
	metricsCfg := middleware.DefaultMetricsConfig
	metricsCfg.Registry = reg
	app.Use(middleware.MetricsWithConfig(metricsCfg))

	// ---------- Routes ----------
	app.Get("/", deps.CatalogHandler.Root)
	app.Get("/suggest", deps.SuggestHandler.Suggest)
	app.Get("/compare", deps.CompareHandler.Compare)
	app.Get("/product-names", deps.CatalogHandler.Names)
	app.Get("/categories", deps.CatalogHandler.Categories)

	// Health & 404
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		middleware.MarkUnmatched(c)
		return apperr.NewNotFound("Page not found", nil)
	})

	return app
}
