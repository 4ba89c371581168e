package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Matcher  MatcherConfig
	Twilio   TwilioConfig
	Telegram TelegramConfig
	Sheets   SheetsConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// URL, when set, wins over the discrete fields below. The deploy
	// platform injects it as DATABASE_URL.
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type MatcherConfig struct {
	// Threshold is the minimum cosine similarity a corpus entry must
	// strictly exceed to be accepted. Deliberately low: queries are short
	// and the corpus is small, so recall beats precision here.
	Threshold       float64
	FallbackMessage string
	LoadTimeout     time.Duration
}

type TwilioConfig struct {
	AccountSID     string
	AuthToken      string
	WhatsAppNumber string
}

type TelegramConfig struct {
	Token       string
	AdminChatID int64
	AppName     string
}

type SheetsConfig struct {
	SpreadsheetID     string
	CredentialsBase64 string
}

// DefaultFallbackMessage is sent whenever no corpus entry clears the
// similarity threshold.
const DefaultFallbackMessage = "Desculpe, não encontrei uma resposta adequada para sua pergunta. Tente reformular ou perguntar de outra forma."

func Load() (*Config, error) {
	// Optional .env file; plain environment variables are enough in
	// containerized deploys.
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	loadTimeout, _ := strconv.Atoi(getEnv("CORPUS_LOAD_TIMEOUT", "10"))
	threshold, err := strconv.ParseFloat(getEnv("SIMILARITY_THRESHOLD", "0.1"), 64)
	if err != nil {
		threshold = 0.1
	}
	adminChatID, _ := strconv.ParseInt(getEnv("ADMIN_CHAT_ID", "0"), 10, 64)

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			URL:      getEnv("DATABASE_URL", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "atendebot"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Matcher: MatcherConfig{
			Threshold:       threshold,
			FallbackMessage: getEnv("FALLBACK_MESSAGE", DefaultFallbackMessage),
			LoadTimeout:     time.Duration(loadTimeout) * time.Second,
		},
		Twilio: TwilioConfig{
			AccountSID:     getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:      getEnv("TWILIO_AUTH_TOKEN", ""),
			WhatsAppNumber: getEnv("TWILIO_WHATSAPP_NUMBER", ""),
		},
		Telegram: TelegramConfig{
			Token:       getEnv("TELEGRAM_TOKEN", ""),
			AdminChatID: adminChatID,
			AppName:     getEnv("FLY_APP_NAME", ""),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:     getEnv("SHEETS_SPREADSHEET_ID", ""),
			CredentialsBase64: getEnv("GOOGLE_CREDENTIALS_JSON_BASE64", ""),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
