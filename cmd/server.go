package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/akirakitchen/backend/pkg/config"
	"github.com/akirakitchen/backend/pkg/errx"
)

func main() {
	// .env is optional; real deployments configure the environment.
	_ = godotenv.Load()

	cfg := config.Load()
	log := newLogger(cfg.Server)

	log.Info().Msg("🚀 Starting Akira Kitchen API...")

	container := NewContainer(cfg, log)
	defer container.Cleanup()

	app := fiber.New(fiber.Config{
		AppName:               "Akira Kitchen API",
		DisableStartupMessage: true,
		ErrorHandler:          errx.FiberErrorHandler(log),
	})

	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return uuid.NewString()
		},
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		AllowMethods: "GET, POST, HEAD, OPTIONS",
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${method} ${path} | ${ip} | ${reqHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
	}))

	app.Get("/health", healthCheckHandler(container))
	app.Get("/", infoHandler)

	container.Booking.RegisterRoutes(app)
	log.Info().Msg("✓ Booking routes registered")

	app.Use(notFoundHandler)

	container.StartBackgroundServices(context.Background())

	startServer(app, cfg.Server.Port, log)
}

// healthCheckHandler reports liveness plus whether a real mail transport
// is configured, so a degraded deployment is visible from the outside.
func healthCheckHandler(container *Container) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":          "OK",
			"emailConfigured": container.EmailConfigured(),
			"timestamp":       time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// infoHandler returns basic API information.
func infoHandler(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"service": "Akira Kitchen API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"health":       "GET /health",
			"reservations": "POST /api/reservations",
			"contact":      "POST /api/contact",
		},
	})
}

// notFoundHandler handles unmatched routes.
func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"code":    "NOT_FOUND",
		"message": "The requested endpoint does not exist",
		"path":    c.Path(),
	})
}

// startServer runs the listener and blocks until a shutdown signal.
func startServer(app *fiber.App, port string, log zerolog.Logger) {
	go func() {
		log.Info().Str("port", port).Msg("server listening")
		if err := app.Listen(":" + port); err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("shutting down gracefully...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("✅ Server exited")
}
