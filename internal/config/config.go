package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Server    ServerConfig
	MongoDB   MongoDBConfig
	JWT       JWTConfig
	Reporting ReportingConfig
	Notify    NotifyConfig
	Sheets    SheetsConfig
}

// ServerConfig holds HTTP server related options.
type ServerConfig struct {
	Port string
}

// MongoDBConfig holds settings for MongoDB.
type MongoDBConfig struct {
	URI    string
	DBName string
}

// JWTConfig holds the token signing secret.
type JWTConfig struct {
	Secret string
}

// ReportingConfig holds the cron expressions for the scheduled jobs.
type ReportingConfig struct {
	OverdueCron string
	ExportCron  string
}

// NotifyConfig configures the optional reminder webhook. Empty URL disables it.
type NotifyConfig struct {
	WebhookURL string
	Token      string
}

// Enabled reports whether a webhook target is configured.
func (c NotifyConfig) Enabled() bool {
	return c.WebhookURL != ""
}

// SheetsConfig configures the optional Google Sheets summary export. Both
// fields empty disables it.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// Enabled reports whether the sheet export is fully configured.
func (c SheetsConfig) Enabled() bool {
	return c.CredentialsPath != "" && c.SpreadsheetID != ""
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Ignore the returned error here; missing .env files are acceptable when
		// configuration comes from the environment directly.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getenvWithDefault("APP_PORT", "8080"),
		},
		MongoDB: MongoDBConfig{
			URI:    getenvWithDefault("MONGODB_URI", "mongodb://localhost:27017"),
			DBName: getenvWithDefault("MONGODB_DB_NAME", "ventas"),
		},
		JWT: JWTConfig{
			Secret: os.Getenv("JWT_SECRET"),
		},
		Reporting: ReportingConfig{
			OverdueCron: getenvWithDefault("OVERDUE_CRON_SCHEDULE", "0 9 * * *"),
			ExportCron:  getenvWithDefault("EXPORT_CRON_SCHEDULE", "0 20 * * *"),
		},
		Notify: NotifyConfig{
			WebhookURL: os.Getenv("REMINDER_WEBHOOK_URL"),
			Token:      os.Getenv("REMINDER_WEBHOOK_TOKEN"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_SUMMARY_ID"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}

	if c.Server.Port == "" {
		return errors.New("APP_PORT must be provided")
	}

	switch {
	case c.MongoDB.URI == "":
		return errors.New("MONGODB_URI must be provided")
	case c.MongoDB.DBName == "":
		return errors.New("MONGODB_DB_NAME must be provided")
	}

	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET must be provided")
	}

	if c.Reporting.OverdueCron == "" {
		return errors.New("OVERDUE_CRON_SCHEDULE must be provided")
	}
	if c.Reporting.ExportCron == "" {
		return errors.New("EXPORT_CRON_SCHEDULE must be provided")
	}

	// Sheets export only works with both halves present; catch a half-set
	// configuration early instead of failing at 20:00.
	if (c.Sheets.CredentialsPath == "") != (c.Sheets.SpreadsheetID == "") {
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH and GOOGLE_SHEET_SUMMARY_ID must be set together")
	}

	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
