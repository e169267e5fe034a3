package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"growth-dashboard/internal/config"
	"growth-dashboard/internal/logging"

	growthCsv "growth-dashboard/internal/growth/adapters/csvfile"
	growthHttp "growth-dashboard/internal/growth/adapters/http/fiber"
	growthRepoPg "growth-dashboard/internal/growth/adapters/postgres"
	growthXlsx "growth-dashboard/internal/growth/adapters/xlsx"
	growthPorts "growth-dashboard/internal/growth/core/ports"
	growthUsecase "growth-dashboard/internal/growth/core/usecase"

	dashboardHttp "growth-dashboard/internal/dashboard/adapters/http/fiber"
	dashboardMemory "growth-dashboard/internal/dashboard/adapters/memory"
	dashboardRepoPg "growth-dashboard/internal/dashboard/adapters/postgres"
	dashboardPorts "growth-dashboard/internal/dashboard/core/ports"
	dashboardUsecase "growth-dashboard/internal/dashboard/core/usecase"

	subscriptionsHttp "growth-dashboard/internal/subscriptions/adapters/http/fiber"
	subscriptionsRepoPg "growth-dashboard/internal/subscriptions/adapters/postgres"
	subscriptionsUsecase "growth-dashboard/internal/subscriptions/core/usecase"

	"github.com/gofiber/fiber/v2"
	fiberLogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "growth-dashboard/docs"
)

// @title Growth Dashboard API
// @version 1.0
// @description Subscriber growth series, chart geometry and subscription ingestion.
// @host localhost:8080
// @BasePath /
func main() {
	// Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatalf("failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger := logging.New(cfg.LogLevel, os.Stderr)

	// DB connection (optional)
	var db *sql.DB
	if cfg.UsePostgres() {
		db, err = openPostgres(cfg.PostgresDSN)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer db.Close()
	}

	// Record source
	var source growthPorts.RecordSourcePort
	switch cfg.DataSource {
	case config.SourceXLSX:
		source = growthXlsx.NewReader(cfg.DataPath)
	case config.SourcePostgres:
		source = growthRepoPg.NewSubscriberRepository(growthRepoPg.NewSQLDB(db))
	default:
		source = growthCsv.NewReader(cfg.DataPath)
	}

	// Preference store
	var prefs dashboardPorts.PreferenceStorePort = dashboardMemory.NewPreferenceStore()
	if db != nil {
		prefs = dashboardRepoPg.NewPreferenceStore(dashboardRepoPg.NewSQLDB(db))
	}

	// Usecases
	loadGrowthUC := growthUsecase.NewLoadGrowthUseCase(source, logger)
	themeUC := dashboardUsecase.NewThemeUseCase(prefs, logger)

	// HTTP (Fiber) app + handlers
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(fiberLogger.New(fiberLogger.Config{Output: logger.Writer()}))

	dashboardHttp.NewDashboardHandler(loadGrowthUC, themeUC, time.Now, logger).Register(app)
	growthHttp.NewGrowthHandler(loadGrowthUC, time.Now, logger).Register(app)

	if db != nil {
		repo := subscriptionsRepoPg.NewSubscriptionRepository(subscriptionsRepoPg.NewSQLDB(db))
		storeUC := subscriptionsUsecase.NewStoreSubscriptionUseCase(repo, time.Now, logger)
		subscriptionsHttp.NewSubscriptionHandler(storeUC, logger).Register(app)
	}

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			logger.Error("fiber stopped: %v", err)
		}
	}()

	logger.Info("server started on %s (source=%s)", cfg.HTTPAddr, cfg.DataSource)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	logger.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("fiber shutdown error: %v", err)
	}

	logger.Info("server exiting")
}

func openPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
