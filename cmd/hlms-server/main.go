package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hlms/hlms/internal/config"
	"github.com/hlms/hlms/internal/domain/account"
	"github.com/hlms/hlms/internal/domain/assistant"
	"github.com/hlms/hlms/internal/domain/invoice"
	"github.com/hlms/hlms/internal/domain/order"
	"github.com/hlms/hlms/internal/domain/product"
	"github.com/hlms/hlms/internal/domain/shipment"
	"github.com/hlms/hlms/internal/domain/vehicle"
	"github.com/hlms/hlms/internal/platform/auth"
	"github.com/hlms/hlms/internal/platform/db"
	"github.com/hlms/hlms/internal/platform/genai"
	"github.com/hlms/hlms/internal/platform/middleware"
	"github.com/hlms/hlms/internal/platform/validate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hlms-server",
		Short: "Hospital Logistics Management API Server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the logistics API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			count, err := migrator.Up(ctx)
			if err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}

			fmt.Printf("Applied %d migration(s) successfully.\n", count)
			return nil
		},
	}
	cmd.AddCommand(upCmd)

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
			if err != nil {
				return err
			}
			defer pool.Close()

			migrator := db.NewMigrator(pool, cfg.MigrationsDir)
			statuses, err := migrator.Status(ctx)
			if err != nil {
				return fmt.Errorf("failed to get migration status: %w", err)
			}

			fmt.Printf("%-10s %-40s %-10s %s\n", "VERSION", "NAME", "STATUS", "APPLIED AT")
			for _, s := range statuses {
				status := "pending"
				appliedAt := ""
				if s.Applied {
					status = "applied"
					if s.AppliedAt != nil {
						appliedAt = s.AppliedAt.Format("2006-01-02 15:04:05")
					}
				}
				fmt.Printf("%-10d %-40s %-10s %s\n", s.Version, s.Name, status, appliedAt)
			}
			return nil
		},
	}
	cmd.AddCommand(statusCmd)

	return cmd
}

func runServer() error {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMinConns)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer pool.Close()
	logger.Info().Msg("connected to database")

	completer := genai.NewClient(cfg.GenAIAPIKey, cfg.GenAIModel, cfg.GenAIRequestTimeout())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validate.New()

	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	apiV1 := e.Group("/api/v1")
	apiV1.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig()))

	// Repositories and services
	accountRepo := account.NewRepoPG(pool)
	accountSvc := account.NewService(accountRepo)

	orderRepo := order.NewRepoPG(pool)
	orderSvc := order.NewService(orderRepo, accountRepo, logger)

	productRepo := product.NewRepoPG(pool)
	productSvc := product.NewService(productRepo, accountRepo)

	invoiceSvc := invoice.NewService(invoice.NewRepoPG(pool))
	shipmentSvc := shipment.NewService(shipment.NewRepoPG(pool))
	vehicleSvc := vehicle.NewService(vehicle.NewRepoPG(pool))
	assistantSvc := assistant.NewService(assistant.NewRepoPG(pool), completer, logger)

	// Routes
	authMW := auth.Middleware([]byte(cfg.JWTSecret))
	account.NewHandler(accountSvc).RegisterRoutes(apiV1, authMW)
	order.NewHandler(orderSvc).RegisterRoutes(apiV1)
	product.NewHandler(productSvc).RegisterRoutes(apiV1)
	invoice.NewHandler(invoiceSvc).RegisterRoutes(apiV1)
	shipment.NewHandler(shipmentSvc).RegisterRoutes(apiV1)
	vehicle.NewHandler(vehicleSvc).RegisterRoutes(apiV1)
	assistant.NewHandler(assistantSvc).RegisterRoutes(e)

	e.Static("/uploads", cfg.UploadsDir)
	e.GET("/health", db.HealthHandler(pool))

	// Start server with graceful shutdown
	go func() {
		addr := ":" + cfg.Port
		logger.Info().Str("addr", addr).Msg("starting server")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
