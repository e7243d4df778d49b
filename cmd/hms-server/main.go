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

	"github.com/clinichq/hms/internal/config"
	"github.com/clinichq/hms/internal/domain/appointment"
	"github.com/clinichq/hms/internal/domain/billing"
	"github.com/clinichq/hms/internal/domain/doctor"
	"github.com/clinichq/hms/internal/domain/patient"
	"github.com/clinichq/hms/internal/domain/prefs"
	"github.com/clinichq/hms/internal/domain/record"
	"github.com/clinichq/hms/internal/domain/reporting"
	"github.com/clinichq/hms/internal/platform/middleware"
	"github.com/clinichq/hms/internal/platform/store"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-server",
		Short: "Clinic record-keeping API server",
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Reset the store to the sample dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctx := context.Background()
			st, err := openStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer st.Close()

			keys := []string{
				patient.StorageKey,
				doctor.StorageKey,
				appointment.StorageKey,
				billing.StorageKey,
				prefs.ThemeKey,
			}
			for _, key := range keys {
				if err := st.Delete(ctx, key); err != nil {
					return fmt.Errorf("delete %q: %w", key, err)
				}
			}

			// Hydrating empty collections writes the seed data back.
			if _, err := patient.NewRepo(ctx, st); err != nil {
				return err
			}
			if _, err := doctor.NewRepo(ctx, st); err != nil {
				return err
			}
			if _, err := appointment.NewRepo(ctx, st); err != nil {
				return err
			}
			if _, err := billing.NewRepo(ctx, st); err != nil {
				return err
			}

			fmt.Println("Store reset to sample dataset.")
			return nil
		},
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	return store.Open(ctx, store.Options{
		Driver:      cfg.StoreDriver,
		DataDir:     cfg.DataDir,
		SQLitePath:  cfg.SQLitePath,
		DatabaseURL: cfg.DatabaseURL,
	})
}

func runServer() error {
	// Logger
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	if os.Getenv("ENV") == "development" || os.Getenv("ENV") == "" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	// Store
	ctx := context.Background()
	st, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()
	logger.Info().Str("driver", cfg.StoreDriver).Msg("store opened")

	// Repositories. A persistence error during hydration is degraded
	// service, not a startup failure: the collections run from memory.
	patientRepo, err := patient.NewRepo(ctx, st)
	if err != nil {
		if !record.IsPersistence(err) {
			logger.Fatal().Err(err).Msg("failed to load patients")
		}
		logger.Warn().Err(err).Msg("patients running from memory only")
	}
	doctorRepo, err := doctor.NewRepo(ctx, st)
	if err != nil {
		if !record.IsPersistence(err) {
			logger.Fatal().Err(err).Msg("failed to load doctors")
		}
		logger.Warn().Err(err).Msg("doctors running from memory only")
	}
	appointmentRepo, err := appointment.NewRepo(ctx, st)
	if err != nil {
		if !record.IsPersistence(err) {
			logger.Fatal().Err(err).Msg("failed to load appointments")
		}
		logger.Warn().Err(err).Msg("appointments running from memory only")
	}
	billingRepo, err := billing.NewRepo(ctx, st)
	if err != nil {
		if !record.IsPersistence(err) {
			logger.Fatal().Err(err).Msg("failed to load billing records")
		}
		logger.Warn().Err(err).Msg("billing running from memory only")
	}

	// Services
	patientSvc := patient.NewService(patientRepo)
	doctorSvc := doctor.NewService(doctorRepo)
	appointmentSvc := appointment.NewService(appointmentRepo, patientSvc, doctorSvc)
	billingSvc := billing.NewService(billingRepo, patientSvc)
	reportingSvc := reporting.NewService(patientSvc, doctorSvc, appointmentSvc, billingSvc)
	prefsSvc, err := prefs.NewService(ctx, st)
	if err != nil {
		logger.Warn().Err(err).Msg("theme preference running from memory only")
	}

	// Echo server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Global middleware
	e.Use(middleware.Recovery(logger))
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{"Content-Type", middleware.HeaderRequestID},
	}))

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "ok",
			"version": "0.1.0",
		})
	})

	// API routes
	apiV1 := e.Group("/api/v1")
	patient.NewHandler(patientSvc).RegisterRoutes(apiV1)
	doctor.NewHandler(doctorSvc).RegisterRoutes(apiV1)
	appointment.NewHandler(appointmentSvc).RegisterRoutes(apiV1)
	billing.NewHandler(billingSvc).RegisterRoutes(apiV1)
	reporting.NewHandler(reportingSvc).RegisterRoutes(apiV1)
	prefs.NewHandler(prefsSvc).RegisterRoutes(apiV1)

	// Graceful shutdown
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

	logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server shutdown failed")
	}
	logger.Info().Msg("server stopped")
	return nil
}
