package main

import (
	"context"
	"time"

	"github.com/synchomes/synchomes-api/internal/config"
	"github.com/synchomes/synchomes-api/internal/database"
	"github.com/synchomes/synchomes-api/internal/logger"
	"github.com/synchomes/synchomes-api/internal/repository"
	"github.com/synchomes/synchomes-api/internal/service"
)

// seed creates the bootstrap admin from ADMIN_EMAIL / ADMIN_PASSWORD /
// ADMIN_NAME. Running it again is a no-op.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if cfg.AutoMigrate {
		if err := database.Migrate(cfg.DatabaseURL, log); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	authService := service.NewAuthService(cfg)
	adminService := service.NewAdminService(repository.NewAdminRepository(pool), authService, log)

	created, err := adminService.EnsureBootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("Seeding failed")
	}
	if !created {
		log.Info().Str("email", cfg.AdminEmail).Msg("Admin already exists, nothing to do")
		return
	}
	log.Info().Str("email", cfg.AdminEmail).Msg("Admin seeded")
}
