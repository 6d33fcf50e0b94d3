package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/grana-app/grana_backend/internal/core/services"
	"github.com/grana-app/grana_backend/internal/handlers"
	"github.com/grana-app/grana_backend/internal/middleware"
	"github.com/grana-app/grana_backend/internal/platform/config"
	"github.com/grana-app/grana_backend/internal/platform/fx"
	"github.com/grana-app/grana_backend/internal/repositories/database/pgsql"
	"github.com/grana-app/grana_backend/internal/utils"
	"github.com/grana-app/grana_backend/pkg/database"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	limiter "github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title Grana Backend API
// @version 1.0
// @description Currency-aware ledger aggregation backend for the Grana personal finance app.

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-User-ID
// @description Acting user identity, set by the edge proxy after authentication.

// @security ApiKeyAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection pool (for application use)
	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer dbPool.Close()
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := handlers.RegisterCustomValidators(); err != nil {
		logger.Error("Failed to register custom validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting, analytics)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-User-ID")
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	r.Use(middleware.PosthogMiddleware(posthogClient))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Repositories and services
	repos := pgsql.NewRepositoryProvider(dbPool)

	rateTable := services.NewRateTable(repos.ExchangeRateRepo, fx.NewClient(cfg.FXProviderURL))
	rateTable.Bootstrap(context.Background())

	unsubscribe := rateTable.OnRefresh(func() {
		logger.Info("Rate table refreshed", slog.Time("last_refreshed", rateTable.LastRefreshed()))
	})
	defer unsubscribe()

	serviceContainer := services.NewServiceContainer(repos, rateTable)

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	// Periodic background refresh from the FX provider.
	if cfg.FXProviderURL != "" {
		go refreshRatesLoop(context.Background(), rateTable, cfg.FXRefreshInterval, logger)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending database migrations from the migrations
// directory using a short-lived database/sql connection.
func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// refreshRatesLoop refreshes the rate table immediately and then on a fixed
// interval. Failures are logged and retried on the next tick; the table keeps
// serving its last known rates in between.
func refreshRatesLoop(ctx context.Context, rateTable *services.RateTable, interval time.Duration, logger *slog.Logger) {
	if err := rateTable.Refresh(ctx); err != nil {
		logger.Warn("Initial rate refresh failed", slog.String("error", err.Error()))
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := rateTable.Refresh(ctx); err != nil {
				logger.Warn("Scheduled rate refresh failed", slog.String("error", err.Error()))
			}
		}
	}
}
