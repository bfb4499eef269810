package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/myanimal/petcare-service/internal/infrastructure/config"
	"github.com/myanimal/petcare-service/internal/infrastructure/database"
	"github.com/myanimal/petcare-service/internal/infrastructure/repository"
	"github.com/myanimal/petcare-service/internal/infrastructure/uploads"
	httprouter "github.com/myanimal/petcare-service/internal/interfaces/http"
	"go.uber.org/zap"
)

// @title Petcare Service API
// @version 1.0
// @description Pet grooming backend with phone number verification over SMS
// @host localhost:9003
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.DBAutoMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL(), logger); err != nil {
			logger.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Create database connection
	ctx := context.Background()
	db, err := database.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	files, err := uploads.NewManager(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	if cfg.UploadSweepSchedule != "" {
		sweeper := uploads.NewSweeper(files, repository.NewUploadReferenceRepository(db, logger), cfg.UploadSweepGrace, logger)
		if err := sweeper.Start(cfg.UploadSweepSchedule); err != nil {
			logger.Fatal("Failed to schedule upload sweep", zap.Error(err))
		}
		defer sweeper.Stop()
	}

	// Create router
	router := httprouter.NewRouter(db, files, cfg, logger)
	defer router.Close()

	// Start server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.Int("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	logger.Info("Server exited properly")
}
