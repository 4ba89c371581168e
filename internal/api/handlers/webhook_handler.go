package handlers

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"atendebot/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gofiber/fiber/v2"
	"github.com/twilio/twilio-go/twiml"
	"go.uber.org/zap"
)

// FAQResponder is the one operation the transports need from the core.
type FAQResponder interface {
	Respond(ctx context.Context, rawText, userID string) (string, error)
}

type WebhookHandler struct {
	responder FAQResponder
	whatsapp  *service.WhatsAppSender
	telegram  *service.TelegramNotifier
	logger    *zap.Logger
}

// NewWebhookHandler wires the two webhook front-ends. Either sender may be
// nil: WhatsApp then answers inline with TwiML, Telegram replies are skipped.
func NewWebhookHandler(responder FAQResponder, whatsapp *service.WhatsAppSender, telegram *service.TelegramNotifier, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{
		responder: responder,
		whatsapp:  whatsapp,
		telegram:  telegram,
		logger:    logger,
	}
}

// WhatsAppReply handles the Twilio form webhook: Body carries the question,
// From the user's WhatsApp address.
func (h *WebhookHandler) WhatsAppReply(c *fiber.Ctx) error {
	body := strings.TrimSpace(c.FormValue("Body"))
	from := c.FormValue("From")

	if body == "" {
		return sendTwiML(c, nil)
	}

	answer, err := h.responder.Respond(c.Context(), body, from)
	if err != nil {
		return h.failRequest(c, err)
	}

	// Prefer the REST send when configured; otherwise the answer rides
	// back in the TwiML response itself.
	if h.whatsapp != nil {
		if err := h.whatsapp.Send(from, answer); err == nil {
			return sendTwiML(c, nil)
		}
		h.logger.Warn("REST send failed, replying inline", zap.Error(err))
	}

	return sendTwiML(c, []twiml.Element{&twiml.MessagingMessage{Body: answer}})
}

// TelegramUpdate handles the Telegram webhook. Non-text updates are
// acknowledged and dropped; returning an error status would only make
// Telegram redeliver them.
func (h *WebhookHandler) TelegramUpdate(c *fiber.Ctx) error {
	var update tgbotapi.Update
	if err := c.BodyParser(&update); err != nil {
		h.logger.Warn("Malformed telegram update", zap.Error(err))
		return c.SendStatus(fiber.StatusBadRequest)
	}

	if update.Message == nil || strings.TrimSpace(update.Message.Text) == "" {
		return c.SendStatus(fiber.StatusOK)
	}

	chatID := update.Message.Chat.ID
	answer, err := h.responder.Respond(c.Context(), update.Message.Text, strconv.FormatInt(chatID, 10))
	if err != nil {
		return h.failRequest(c, err)
	}

	if h.telegram != nil {
		if err := h.telegram.SendMessage(chatID, answer); err != nil {
			h.logger.Warn("Failed to deliver telegram reply", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}

	return c.SendStatus(fiber.StatusOK)
}

// failRequest maps core failures to transport statuses. Internal error text
// never reaches the platform or the end user.
func (h *WebhookHandler) failRequest(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrCorpusUnavailable) {
		h.logger.Error("Corpus unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "service unavailable",
		})
	}

	h.logger.Error("Failed to answer request", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func sendTwiML(c *fiber.Ctx, verbs []twiml.Element) error {
	doc, err := twiml.Messages(verbs)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	c.Set(fiber.HeaderContentType, "text/xml")
	return c.SendString(doc)
}
