package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"systemgp/internal/adapters/persistence/models"
	"systemgp/internal/adapters/persistence/repositories"
	"systemgp/internal/config"
	"systemgp/internal/core/services"
	"systemgp/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.AppMode)
	logg.Info().Str("mode", cfg.AppMode).Msg("configuration loaded")

	db, err := config.ConnectDatabase(cfg, logg)
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer config.CloseDatabase(db)

	if err := models.AutoMigrate(db); err != nil {
		logg.Fatal().Err(err).Msg("failed to auto migrate")
	}
	logg.Info().Msg("database migration completed")

	if err := config.NewSeeder(db, cfg, logg).Run(); err != nil {
		logg.Warn().Err(err).Msg("seeding failed")
	}

	userRepo := repositories.NewUserRepository(db, logg)
	projectRepo := repositories.NewProjectRepository(db, logg)
	teamRepo := repositories.NewTeamRepository(db, logg)
	dashboard := services.NewDashboardService(userRepo, projectRepo, teamRepo, logg)

	snap := dashboard.Counts(context.Background())
	logg.Info().
		Int64("users", snap.Users).
		Int64("projects", snap.Projects).
		Int64("teams", snap.Teams).
		Msg("store ready")

	cronService := services.NewCronService(dashboard, logg)
	if err := cronService.Start(); err != nil {
		logg.Fatal().Err(err).Msg("failed to start cron service")
	}
	defer cronService.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logg.Info().Msg("shutting down")
}
