package service

import (
	"fmt"

	"atendebot/pkg/config"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// TelegramNotifier replies to chat messages and carries the startup notice
// to the admin chat.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      *zap.Logger
}

func NewTelegramNotifier(cfg *config.TelegramConfig, logger *zap.Logger) (*TelegramNotifier, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	return &TelegramNotifier{
		bot:         bot,
		adminChatID: cfg.AdminChatID,
		logger:      logger,
	}, nil
}

func (n *TelegramNotifier) SendMessage(chatID int64, text string) error {
	if _, err := n.bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("failed to send telegram message: %w", err)
	}
	return nil
}

// NotifyStartup tells the admin chat the service is up. Best-effort: a
// missing chat id or a send failure only warns, it never blocks startup.
// The admin must have started a conversation with the bot at least once,
// otherwise Telegram rejects the send.
func (n *TelegramNotifier) NotifyStartup() {
	if n.adminChatID == 0 {
		n.logger.Warn("ADMIN_CHAT_ID not set, skipping startup notification")
		return
	}

	if err := n.SendMessage(n.adminChatID, "Oi! O bot foi iniciado ou atualizado com sucesso no servidor."); err != nil {
		n.logger.Warn("Failed to send startup notification", zap.Error(err))
		return
	}

	n.logger.Info("Startup notification sent", zap.Int64("chat_id", n.adminChatID))
}
