package api

import (
	"atendebot/internal/api/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

func SetupRouter(
	webhookHandler *handlers.WebhookHandler,
	adminHandler *handlers.AdminHandler,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			appLogger.Error("Unhandled request error", zap.Error(err))
			// Fixed text only; internal errors stay in the logs.
			return c.Status(code).JSON(fiber.Map{
				"error": "internal server error",
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	webhooks := app.Group("/webhook")
	webhooks.Post("/whatsapp", webhookHandler.WhatsAppReply)
	webhooks.Post("/telegram", webhookHandler.TelegramUpdate)

	admin := app.Group("/admin")
	admin.Post("/reload", adminHandler.ReloadCorpus)

	return app
}
