// One-shot worker that mirrors the interaction history into the configured
// Google Sheets spreadsheet. Run it on a schedule; every run rewrites the
// sheet as a complete snapshot.
package main

import (
	"context"
	"log"

	"atendebot/internal/repository"
	"atendebot/internal/service"
	"atendebot/pkg/config"
	"atendebot/pkg/logger"
	"atendebot/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	appLogger.Info("Starting spreadsheet sync")

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	interactionRepo := repository.NewInteractionRepository(db, appLogger)
	exportService := service.NewExportService(interactionRepo, &cfg.Sheets, appLogger)

	if err := exportService.Sync(ctx); err != nil {
		appLogger.Fatal("Spreadsheet sync failed", zap.Error(err))
	}

	appLogger.Info("Spreadsheet sync finished")
}
