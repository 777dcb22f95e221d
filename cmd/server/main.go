package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/synchomes/synchomes-api/internal/config"
	"github.com/synchomes/synchomes-api/internal/database"
	"github.com/synchomes/synchomes-api/internal/handler"
	"github.com/synchomes/synchomes-api/internal/logger"
	"github.com/synchomes/synchomes-api/internal/repository"
	"github.com/synchomes/synchomes-api/internal/router"
	"github.com/synchomes/synchomes-api/internal/service"
	"github.com/synchomes/synchomes-api/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("env", cfg.AppEnv).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Synchomes API")

	if cfg.IsProduction() {
		if cfg.JWTSecret == config.DefaultJWTSecret {
			log.Warn().Msg("JWT_SECRET is the built-in default; set a random secret")
		}
		if cfg.AdminPassword == config.DefaultAdminPassword {
			log.Warn().Msg("ADMIN_PASSWORD is the built-in default; change it after first login")
		}
	}

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Apply Migrations ──────────────────────────────────────────────
	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis (optional) ───────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	projectRepo := repository.NewProjectRepository(pool)
	clientRepo := repository.NewClientRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	subscriberRepo := repository.NewSubscriberRepository(pool)
	dashboardRepo := repository.NewDashboardRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	listCache := service.NewListCache(rdb, cfg.ListCacheTTL, log)
	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(adminRepo, authService, log)
	mediaService := service.NewMediaService(cfg)
	projectService := service.NewProjectService(projectRepo, mediaService, listCache, log)
	clientService := service.NewClientService(clientRepo, mediaService, listCache, log)
	contactService := service.NewContactService(contactRepo)
	subscriberService := service.NewSubscriberService(subscriberRepo)
	dashboardService := service.NewDashboardService(dashboardRepo)
	exportService := service.NewExportService(contactRepo, subscriberRepo)

	// ─── Bootstrap Admin ──────────────────────────────────────────────
	if _, err := adminService.EnsureBootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed bootstrap admin")
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.UploadDir).Msg("Failed to create upload directory")
	}

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:       handler.NewAuthHandler(authService, adminService, cfg),
		Project:    handler.NewProjectHandler(projectService),
		Client:     handler.NewClientHandler(clientService),
		Contact:    handler.NewContactHandler(contactService),
		Subscriber: handler.NewSubscriberHandler(subscriberService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Export:     handler.NewExportHandler(exportService),
		System:     handler.NewSystemHandler(pool, rdb, log),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
