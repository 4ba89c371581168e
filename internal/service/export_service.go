package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"atendebot/internal/models"
	"atendebot/pkg/config"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// AuditReader supplies the full interaction history for export.
type AuditReader interface {
	ListAll(ctx context.Context) ([]models.Interaction, error)
}

// ExportService mirrors the interaction history into a Google Sheets
// worksheet. Each sync clears the sheet and rewrites it wholesale, so the
// spreadsheet is always a complete snapshot.
type ExportService struct {
	audit  AuditReader
	cfg    *config.SheetsConfig
	logger *zap.Logger
}

func NewExportService(audit AuditReader, cfg *config.SheetsConfig, logger *zap.Logger) *ExportService {
	return &ExportService{
		audit:  audit,
		cfg:    cfg,
		logger: logger,
	}
}

func (s *ExportService) Sync(ctx context.Context) error {
	if s.cfg.SpreadsheetID == "" {
		return errors.New("SHEETS_SPREADSHEET_ID is not set")
	}
	if s.cfg.CredentialsBase64 == "" {
		return errors.New("GOOGLE_CREDENTIALS_JSON_BASE64 is not set")
	}

	credentials, err := base64.StdEncoding.DecodeString(s.cfg.CredentialsBase64)
	if err != nil {
		return fmt.Errorf("failed to decode google credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return fmt.Errorf("failed to create sheets client: %w", err)
	}

	interactions, err := s.audit.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load interaction history: %w", err)
	}
	s.logger.Info("Interactions loaded for export", zap.Int("count", len(interactions)))

	values := buildRows(interactions)

	if _, err := srv.Spreadsheets.Values.Clear(s.cfg.SpreadsheetID, "A:F", &sheets.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to clear worksheet: %w", err)
	}

	valueRange := &sheets.ValueRange{Values: values}
	if _, err := srv.Spreadsheets.Values.Update(s.cfg.SpreadsheetID, "A1", valueRange).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write worksheet: %w", err)
	}

	s.logger.Info("Spreadsheet sync completed", zap.Int("rows", len(values)-1))
	return nil
}

func buildRows(interactions []models.Interaction) [][]interface{} {
	values := make([][]interface{}, 0, len(interactions)+1)
	values = append(values, []interface{}{"id", "usuario_id", "pergunta", "resposta", "confianca", "criado_em"})

	for _, interaction := range interactions {
		values = append(values, []interface{}{
			interaction.ID.String(),
			interaction.UserID,
			interaction.Question,
			interaction.Answer,
			interaction.Confidence,
			interaction.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	return values
}
