package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "adroi/internal/adapter/http"
	"adroi/internal/adapter/postgres"
	"adroi/internal/adapter/usecase"
	"adroi/internal/config"
	"adroi/internal/db"
	"adroi/internal/scheduler"
)

// main is the entry point of the adroi service. It loads configuration,
// optionally runs database migrations and seeds data, initializes the
// database pool and repositories, then starts the HTTP server and the
// optional analysis scheduler. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	// Optionally run migrations if configured. We use the Psql sub-config.
	if cfg.Psql.RunMigrations {
		if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
			logger.Error("migration error", slog.Any("error", err))
		} else {
			logger.Info("migrations applied successfully")
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.Psql)
	if err != nil {
		logger.Error("database connection error", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Seed.CSVPath != "" {
		warnings, err := db.SeedFromCSV(ctx, pool, cfg.Seed.CSVPath)
		if err != nil {
			logger.Error("csv seed error", slog.Any("error", err))
			os.Exit(1)
		}
		for _, warn := range warnings {
			logger.Warn("csv seed", slog.String("warning", warn))
		}
		logger.Info("csv data loaded", slog.String("path", cfg.Seed.CSVPath))
	} else if cfg.Seed.Demo {
		if err = db.SeedDemo(ctx, pool); err != nil {
			logger.Error("demo seed error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo data seeded")
	}

	repo := postgres.NewRecordRepository(pool)
	svc := usecase.NewAnalysisService(repo)

	if cfg.Scheduler.Enabled {
		sched := scheduler.New(ctx, svc, logger, cfg.Scheduler.Budget)
		if err = sched.Register(cfg.Scheduler.Spec); err != nil {
			logger.Error("scheduler error", slog.Any("error", err))
			os.Exit(1)
		}
		sched.Start()
		defer sched.Stop()
	}

	handler := httpadapter.NewHandler(svc, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err = srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	value := <-quit
	exitCode = 128 + int(value.(syscall.Signal))

	ctx, cancel = context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	} else {
		logger.Info("server gracefully stopped")
	}
}
