package service

import (
	"fmt"
	"strings"

	"atendebot/pkg/config"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// WhatsAppSender delivers answers over the Twilio messaging REST API. The
// webhook handler falls back to an inline TwiML reply when no sender is
// configured, so this is optional at startup.
type WhatsAppSender struct {
	client *twilio.RestClient
	from   string
	logger *zap.Logger
}

func NewWhatsAppSender(cfg *config.TwilioConfig, logger *zap.Logger) *WhatsAppSender {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &WhatsAppSender{
		client: client,
		from:   ensureWhatsAppPrefix(cfg.WhatsAppNumber),
		logger: logger,
	}
}

func (s *WhatsAppSender) Send(to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(ensureWhatsAppPrefix(to))
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}

	s.logger.Debug("WhatsApp message sent", zap.String("to", to))
	return nil
}

// Twilio addresses WhatsApp endpoints as "whatsapp:+NNN"; inbound webhook
// values already carry the prefix, configured numbers usually do not.
func ensureWhatsAppPrefix(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	return "whatsapp:" + number
}
