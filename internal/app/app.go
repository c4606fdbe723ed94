// Package app wires repositories, services and handlers into a Fiber app.
package app

import (
	"context"
	"time"

	_ "cadastro/docs"
	"cadastro/internal/database"
	"cadastro/internal/handlers"
	"cadastro/internal/middleware"
	"cadastro/internal/repositories"
	"cadastro/internal/services"
	"cadastro/pkg/cache"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// Dependencies are the external collaborators of the app. Cache, Publisher
// and Registry are optional.
type Dependencies struct {
	DB        *gorm.DB
	Cache     cache.Cache
	Publisher services.EventPublisher
	Registry  *prometheus.Registry
	// AccessLog enables the request logger middleware.
	AccessLog bool
}

// New builds the Fiber app serving /clients, /products, /health, /metrics and
// the OpenAPI docs under /docs.
func New(deps Dependencies) (*fiber.App, error) {
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := middleware.NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	// --- Repositories ---
	clientRepo := repositories.NewCachedClientRepository(repositories.NewGORMClientRepository(deps.DB), deps.Cache)
	productRepo := repositories.NewCachedProductRepository(repositories.NewGORMProductRepository(deps.DB), deps.Cache)

	// --- Services ---
	clientService := services.NewClientService(clientRepo, deps.Publisher)
	productService := services.NewProductService(productRepo, deps.Publisher)

	// --- Handlers ---
	clientHandler := handlers.NewClientHandler(clientService)
	productHandler := handlers.NewProductHandler(productService)

	app := fiber.New(fiber.Config{
		AppName:               "cadastro",
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	if deps.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(cors.New())
	app.Use(metrics.Handler())

	// --- Operational endpoints ---
	app.Get("/health", healthHandler(deps))
	app.Get("/metrics", metrics.Endpoint())
	app.Get("/docs/*", swagger.HandlerDefault)

	// --- Resource routes ---
	clientHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)

	return app, nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

func healthHandler(deps Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		status := fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "up",
		}
		code := fiber.StatusOK

		if err := database.Ping(ctx, deps.DB); err != nil {
			status["status"] = "unhealthy"
			status["database"] = "down"
			code = fiber.StatusServiceUnavailable
		}
		if p, ok := deps.Cache.(pinger); ok {
			status["cache"] = "up"
			if err := p.Ping(ctx); err != nil {
				status["cache"] = "down"
			}
		}
		if deps.Publisher != nil {
			status["events"] = "enabled"
		}
		return c.Status(code).JSON(status)
	}
}
