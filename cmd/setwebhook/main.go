// Registers the Telegram webhook for the deployed app. Run once after each
// deploy; Telegram keeps delivering updates to the registered URL.
package main

import (
	"fmt"
	"log"

	"atendebot/pkg/config"
	"atendebot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	if cfg.Telegram.Token == "" || cfg.Telegram.AppName == "" {
		appLogger.Fatal("TELEGRAM_TOKEN and FLY_APP_NAME are required")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		appLogger.Fatal("Failed to create telegram bot", zap.Error(err))
	}

	webhookURL := fmt.Sprintf("https://%s.fly.dev/webhook/telegram", cfg.Telegram.AppName)
	webhook, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		appLogger.Fatal("Failed to build webhook config", zap.Error(err))
	}

	if _, err := bot.Request(webhook); err != nil {
		appLogger.Fatal("Failed to register webhook", zap.Error(err))
	}

	appLogger.Info("Webhook registered", zap.String("url", webhookURL))
}
