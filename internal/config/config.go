package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	GinMode  string
	Database DatabaseConfig
	JWT      JWTConfig
	Mail     MailConfig
}

type DatabaseConfig struct {
	URL string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type MailConfig struct {
	SendGridKey string
	FromEmail   string
	FromName    string
}

func Load() (*Config, error) {
	godotenv.Load()

	expiry, err := time.ParseDuration(getEnv("JWT_EXPIRY", "24h"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
			Expiry: expiry,
		},
		Mail: MailConfig{
			SendGridKey: getEnv("SENDGRID_API_KEY", ""),
			FromEmail:   getEnv("MAIL_FROM_EMAIL", "no-reply@farmbase.local"),
			FromName:    getEnv("MAIL_FROM_NAME", "Farmbase"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
