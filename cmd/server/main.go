package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jobboard/jobboard-api/internal/cache"
	"github.com/jobboard/jobboard-api/internal/config"
	"github.com/jobboard/jobboard-api/internal/database"
	"github.com/jobboard/jobboard-api/internal/handlers"
	"github.com/jobboard/jobboard-api/internal/logging"
	"github.com/jobboard/jobboard-api/internal/middleware"
	"github.com/jobboard/jobboard-api/internal/repository"
	"github.com/jobboard/jobboard-api/internal/routes"
	"github.com/jobboard/jobboard-api/internal/storage"
	"github.com/jobboard/jobboard-api/internal/validator"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.AuthJWTSecret == "" {
		slog.Error("AUTH_JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewStdoutHandler(),
		pgLogHandler,
	)))

	// Log retention
	cleanup, err := logging.StartCleanup(database.DB, cfg.LogRetentionDays)
	if err != nil {
		slog.Error("failed to schedule log cleanup", "error", err)
		os.Exit(1)
	}

	// Repositories
	jobRepo := repository.NewJobRepository(database.DB)
	userRepo := repository.NewUserRepository(database.DB)
	appRepo := repository.NewApplicationRepository(database.DB)

	// Redis for the job listing cache, when configured
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		rdb, err = cache.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			slog.Warn("redis unavailable, job cache disabled", "error", err)
			rdb = nil
		} else {
			slog.Info("job cache enabled", "ttl", cfg.JobCacheTTL.String())
		}
	}

	// Resume storage
	files, err := storage.New(storage.Config{
		Type:      cfg.StorageType,
		BasePath:  cfg.StorageBasePath,
		BaseURL:   cfg.StorageBaseURL,
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	})
	if err != nil {
		slog.Error("storage init failed", "type", cfg.StorageType, "error", err)
		os.Exit(1)
	}

	// Services
	registry, catalogService, cachePinger := wireServices(jobRepo, rdb, cfg.JobCacheTTL, userRepo, appRepo, files)

	// Handlers
	validate := validator.New()
	healthHandler := handlers.NewHealthHandler(database.Ping, cachePinger, jobRepo)
	jobHandler := handlers.NewJobHandler(catalogService, validate)
	userHandler := handlers.NewUserHandler(registry, validate)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.ResumeMaxBytes + 64*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${locals:requestid}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Locally stored resumes are served from disk
	if cfg.StorageType == "local" {
		app.Static("/uploads", cfg.StorageBasePath)
	}

	// Routes
	routes.Setup(app, cfg, healthHandler, jobHandler, userHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	<-cleanup.Stop().Done()
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			slog.Error("redis close error", "error", err)
		}
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}
