package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"atendebot/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubResponder struct {
	answer  string
	err     error
	called  bool
	gotText string
	gotUser string
}

func (s *stubResponder) Respond(ctx context.Context, rawText, userID string) (string, error) {
	s.called = true
	s.gotText = rawText
	s.gotUser = userID
	return s.answer, s.err
}

type stubReloader struct {
	err    error
	called bool
}

func (s *stubReloader) Reload(ctx context.Context) error {
	s.called = true
	return s.err
}

func newTestApp(responder FAQResponder) *fiber.App {
	handler := NewWebhookHandler(responder, nil, nil, zap.NewNop())

	app := fiber.New()
	app.Post("/webhook/whatsapp", handler.WhatsAppReply)
	app.Post("/webhook/telegram", handler.TelegramUpdate)
	return app
}

func postForm(t *testing.T, app *fiber.App, path string, form url.Values) (int, string) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func postJSON(t *testing.T, app *fiber.App, path, payload string) int {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	return resp.StatusCode
}

func TestWhatsAppReplyInlineTwiML(t *testing.T) {
	responder := &stubResponder{answer: "Funciona de segunda a sexta, 8h às 18h."}
	app := newTestApp(responder)

	status, body := postForm(t, app, "/webhook/whatsapp", url.Values{
		"Body": {"qual o horario de atendimento"},
		"From": {"whatsapp:+5561999990000"},
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, responder.answer)
	assert.Contains(t, body, "<Response>")

	assert.Equal(t, "qual o horario de atendimento", responder.gotText)
	assert.Equal(t, "whatsapp:+5561999990000", responder.gotUser)
}

func TestWhatsAppReplyEmptyBody(t *testing.T) {
	responder := &stubResponder{answer: "irrelevante"}
	app := newTestApp(responder)

	status, body := postForm(t, app, "/webhook/whatsapp", url.Values{
		"From": {"whatsapp:+5561999990000"},
	})

	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<Response>")
	assert.False(t, responder.called, "empty messages must not reach the responder")
}

func TestWhatsAppReplyCorpusUnavailable(t *testing.T) {
	responder := &stubResponder{err: service.ErrCorpusUnavailable}
	app := newTestApp(responder)

	status, body := postForm(t, app, "/webhook/whatsapp", url.Values{
		"Body": {"qual o horario"},
		"From": {"whatsapp:+5561999990000"},
	})

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.NotContains(t, body, "corpus", "internal error detail must not leak")
}

func TestTelegramUpdateAnswers(t *testing.T) {
	responder := &stubResponder{answer: "Funciona de segunda a sexta, 8h às 18h."}
	app := newTestApp(responder)

	payload := `{"update_id":1,"message":{"message_id":10,"text":"qual o horario","chat":{"id":42}}}`
	status := postJSON(t, app, "/webhook/telegram", payload)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "qual o horario", responder.gotText)
	assert.Equal(t, "42", responder.gotUser)
}

func TestTelegramUpdateIgnoresNonText(t *testing.T) {
	responder := &stubResponder{answer: "irrelevante"}
	app := newTestApp(responder)

	status := postJSON(t, app, "/webhook/telegram", `{"update_id":2}`)

	assert.Equal(t, fiber.StatusOK, status)
	assert.False(t, responder.called)
}

func TestTelegramUpdateCorpusUnavailable(t *testing.T) {
	responder := &stubResponder{err: service.ErrCorpusUnavailable}
	app := newTestApp(responder)

	payload := `{"update_id":3,"message":{"message_id":11,"text":"oi","chat":{"id":42}}}`
	status := postJSON(t, app, "/webhook/telegram", payload)

	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}

func TestAdminReload(t *testing.T) {
	reloader := &stubReloader{}
	handler := NewAdminHandler(reloader, zap.NewNop())

	app := fiber.New()
	app.Post("/admin/reload", handler.ReloadCorpus)

	status := postJSON(t, app, "/admin/reload", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.True(t, reloader.called)
}

func TestAdminReloadFailure(t *testing.T) {
	reloader := &stubReloader{err: service.ErrCorpusUnavailable}
	handler := NewAdminHandler(reloader, zap.NewNop())

	app := fiber.New()
	app.Post("/admin/reload", handler.ReloadCorpus)

	status := postJSON(t, app, "/admin/reload", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
}
