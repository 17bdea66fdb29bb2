package routes

import (
	"time"

	"github.com/anjiri1684/trivia_api/handlers"
	"github.com/anjiri1684/trivia_api/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type AppConfig struct {
	AllowOrigins string
	// DisableAccessLog silences the request logger, mostly for tests.
	DisableAccessLog bool
}

// NewApp wires middleware and mounts the trivia routes at the root and again
// under /api, where CORS applies.
func NewApp(h *handlers.TriviaHandler, cfg AppConfig) *fiber.App {
	if cfg.AllowOrigins == "" {
		cfg.AllowOrigins = "*"
	}

	app := fiber.New(fiber.Config{
		AppName:       "Trivia API",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler:  handlers.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(middleware.RequestID())
	if !cfg.DisableAccessLog {
		app.Use(logger.New(logger.Config{
			TimeFormat: "2006-01-02 15:04:05",
			Format:     "[${time}] ${locals:" + middleware.RequestIDKey + "} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	app.Use(middleware.AccessControlHeaders())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	api := app.Group("/api", middleware.CORS(cfg.AllowOrigins))
	TriviaRoutes(api, h)
	TriviaRoutes(app, h)

	return app
}
