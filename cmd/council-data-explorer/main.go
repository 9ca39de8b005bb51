package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/councildata/council-data-explorer/internal/airquality"
	httpapi "github.com/councildata/council-data-explorer/internal/api/http"
	"github.com/councildata/council-data-explorer/internal/bins"
	"github.com/councildata/council-data-explorer/internal/cache"
	"github.com/councildata/council-data-explorer/internal/config"
	"github.com/councildata/council-data-explorer/internal/planning"
	"github.com/councildata/council-data-explorer/internal/scheduler"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	// One cache per domain, injected into the services so tests can supply
	// isolated instances.
	binsCache := cache.New[bins.Result]()
	planningCache := cache.New[planning.Result]()
	airCache := cache.New[airquality.Result]()

	binsService := bins.NewService(
		binsCache,
		bins.NewClient(httpClient, cfg.BinsAPIBaseURL),
		cfg.CacheTTLBins,
		cfg.MockMode,
	)
	planningService := planning.NewService(
		planningCache,
		planning.NewClient(httpClient, cfg.PlanningAPIBaseURL),
		cfg.CacheTTLPlanning,
		cfg.MockMode,
	)
	airService := airquality.NewService(
		airCache,
		airquality.NewClient(httpClient, cfg.AirQualityAPIBaseURL),
		cfg.CacheTTLAirQuality,
		cfg.MockMode,
	)

	// Scheduler that periodically evicts expired cache entries.
	sched := scheduler.New([]scheduler.Target{
		{Name: "bins", Cache: binsCache},
		{Name: "planning", Cache: planningCache},
		{Name: "air-quality", Cache: airCache},
	}, cfg.SweepInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "council-data-explorer",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "council-data-explorer",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, httpapi.Services{
		Bins:       binsService,
		Planning:   planningService,
		AirQuality: airService,
	})

	// Start server with graceful shutdown
	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
