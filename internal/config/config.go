package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string
	DatabaseURL    string
	DatabasePath   string
	MigrationsPath string

	// Profile token signing
	TokenSecret   string
	TokenDuration time.Duration

	// Weekly progress report email (disabled when SESFromEmail is empty)
	AWSRegion         string
	SESFromEmail      string
	SESFromName       string
	WeeklyReportEmail string

	Debug bool
}

// Load reads configuration from the environment (and a .env file when
// present) with sensible defaults
func Load() *Config {
	// Best effort; a missing .env file is not an error
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:    os.Getenv("DB_URL"),
		DatabasePath:   getEnv("DB_PATH", "./mindgym.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),

		TokenSecret:   getEnv("TOKEN_SECRET", ""),
		TokenDuration: 24 * time.Hour,

		AWSRegion:         getEnv("AWS_REGION", "us-east-1"),
		SESFromEmail:      os.Getenv("SES_FROM_EMAIL"),
		SESFromName:       getEnv("SES_FROM_NAME", "MindGym"),
		WeeklyReportEmail: os.Getenv("WEEKLY_REPORT_EMAIL"),

		Debug: os.Getenv("DEBUG") == "true",
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
