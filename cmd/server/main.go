package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "ecowaste-backend/internal/api/http"
	"ecowaste-backend/internal/config"
	"ecowaste-backend/internal/jobs"
	"ecowaste-backend/internal/logger"
	"ecowaste-backend/internal/repository/postgres"
	"ecowaste-backend/internal/scheduler"
	"ecowaste-backend/internal/security"
	"ecowaste-backend/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting EcoWaste Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	userSvc := service.NewUserService(store.UserRepository, store.CollectionRepository, store.AnalyticsRepository)
	awardSvc := service.NewAwardService(store.LedgerRepository, store.CollectionRepository, store.ReportRepository)
	collectionSvc := service.NewCollectionService(store.CollectionRepository, store.NotificationRepository)
	reportSvc := service.NewReportService(store.ReportRepository, store.UserRepository, store.NotificationRepository, awardSvc)
	rewardSvc := service.NewRewardService(store.LedgerRepository, store.RewardRepository)
	transitionSvc := service.NewTransitionService(store.LedgerRepository)
	noteSvc := service.NewNotificationService(store.NotificationRepository)
	scheduleSvc := service.NewScheduleService(store.ScheduleRepository)

	// Initialize background jobs
	jobRunner := jobs.NewJobRunner(store, cfg)
	cronScheduler := scheduler.NewScheduler(jobRunner)
	if !cfg.Scheduler.DisableBackgroundJobs {
		cronScheduler.Start()
		defer cronScheduler.Stop()
	} else {
		logger.Info("Background jobs disabled by configuration")
	}

	// Set up HTTP server
	srv := httpapi.NewServer(cfg.GetServerAddress(), httpapi.Services{
		Auth:         authSvc,
		User:         userSvc,
		Collection:   collectionSvc,
		Report:       reportSvc,
		Reward:       rewardSvc,
		Transition:   transitionSvc,
		Notification: noteSvc,
		Schedule:     scheduleSvc,
	}, tokenManager)

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}
	logger.Info("Server stopped")
}
