package router

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wichananm65/user-registry/internal/interface/http/handler"
	"github.com/wichananm65/user-registry/internal/interface/http/middleware"
	"github.com/wichananm65/user-registry/pkg/logger"
)

// Counter reports how many users are stored; used by the health endpoint.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Options tunes the fiber app.
type Options struct {
	Logger       *logger.Logger
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// New builds the fiber app with middleware, health check and user routes.
func New(opts Options, userHandler *handler.UserHandler, counter Counter) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "user-registry",
		DisableStartupMessage: true,
		ReadTimeout:           opts.ReadTimeout,
		WriteTimeout:          opts.WriteTimeout,
		ErrorHandler:          errorHandler,
	})

	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewRequestContext(opts.Logger))
	app.Use(middleware.NewLoggerMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		n, err := counter.Count(c.UserContext())
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok", "users": n})
	})

	userHandler.RegisterRoutes(app)
	return app
}

// errorHandler renders fiber's own errors (unknown route, wrong method) as JSON.
func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "internal server error"

	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
		message = fe.Message
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
