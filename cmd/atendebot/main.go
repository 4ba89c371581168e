package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"atendebot/internal/api"
	"atendebot/internal/api/handlers"
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
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting atendebot service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	faqRepo := repository.NewFAQRepository(db, appLogger)
	interactionRepo := repository.NewInteractionRepository(db, appLogger)

	if err := interactionRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare interaction table", zap.Error(err))
	}

	// Initialize services
	responder := service.NewResponder(faqRepo, interactionRepo, &cfg.Matcher, appLogger)

	var whatsappSender *service.WhatsAppSender
	if cfg.Twilio.AccountSID != "" && cfg.Twilio.AuthToken != "" {
		whatsappSender = service.NewWhatsAppSender(&cfg.Twilio, appLogger)
	} else {
		appLogger.Warn("Twilio credentials not set, WhatsApp replies will be inline TwiML only")
	}

	var telegramNotifier *service.TelegramNotifier
	if cfg.Telegram.Token != "" {
		telegramNotifier, err = service.NewTelegramNotifier(&cfg.Telegram, appLogger)
		if err != nil {
			appLogger.Warn("Telegram bot unavailable", zap.Error(err))
		}
	} else {
		appLogger.Warn("TELEGRAM_TOKEN not set, Telegram replies disabled")
	}

	// Warm the corpus index; a failure here is not fatal because the first
	// request retries the load.
	if err := responder.Warm(ctx); err != nil {
		appLogger.Warn("Corpus not loaded at startup, will retry on first request", zap.Error(err))
	}

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(responder, whatsappSender, telegramNotifier, appLogger)
	adminHandler := handlers.NewAdminHandler(responder, appLogger)

	// Setup router
	app := api.SetupRouter(webhookHandler, adminHandler, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	if telegramNotifier != nil {
		telegramNotifier.NotifyStartup()
	}

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
