package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CorpusReloader rebuilds the in-memory index from the corpus store.
type CorpusReloader interface {
	Reload(ctx context.Context) error
}

type AdminHandler struct {
	reloader CorpusReloader
	logger   *zap.Logger
}

func NewAdminHandler(reloader CorpusReloader, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		reloader: reloader,
		logger:   logger,
	}
}

// ReloadCorpus rebuilds the index after the knowledge base changed. The
// serving path never reloads on its own.
func (h *AdminHandler) ReloadCorpus(c *fiber.Ctx) error {
	if err := h.reloader.Reload(c.Context()); err != nil {
		h.logger.Error("Corpus reload failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "corpus reload failed",
		})
	}

	return c.JSON(fiber.Map{"status": "reloaded"})
}
