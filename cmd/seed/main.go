// Seeds the perguntas_respostas table from a CSV file with the columns
// pergunta,resposta. Each question is normalized exactly once here, so index
// builds at serving time never pay for normalization.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log"
	"os"

	"atendebot/internal/models"
	"atendebot/internal/nlp"
	"atendebot/internal/repository"
	"atendebot/pkg/config"
	"atendebot/pkg/logger"
	"atendebot/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	csvPath := flag.String("csv", "perguntas_respostas.csv", "path to the question/answer CSV file")
	flag.Parse()

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

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	faqRepo := repository.NewFAQRepository(db, appLogger)
	if err := faqRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to prepare corpus table", zap.Error(err))
	}

	appLogger.Info("Starting corpus seeding", zap.String("csv", *csvPath))

	total, err := seedFromCSV(ctx, *csvPath, faqRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Seeding failed", zap.Error(err))
	}

	appLogger.Info("Corpus seeding completed", zap.Int("entries", total))
}

func seedFromCSV(ctx context.Context, path string, repo *repository.FAQRepository, logger *zap.Logger) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 2

	// Header row: pergunta,resposta
	if _, err := reader.Read(); err != nil {
		return 0, err
	}

	total := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, err
		}

		entry := &models.FAQEntry{
			Question:           record[0],
			Answer:             record[1],
			NormalizedQuestion: nlp.Normalize(record[0]),
		}

		if err := repo.Insert(ctx, entry); err != nil {
			return total, err
		}

		total++
		if total%10 == 0 {
			logger.Info("Seeding progress", zap.Int("processed", total))
		}
	}

	return total, nil
}
