package config

import (
	"fmt"
	"os"
	"strconv"
)

// SMTPConfig carries the outbound mail relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// Config aggregates application-wide configuration values.
type Config struct {
	Port            string
	ProjectID       string
	CredentialsFile string
	UsersCollection string
	SMTP            SMTPConfig
}

// Load reads configuration from environment variables and applies sane defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		ProjectID:       os.Getenv("FIRESTORE_PROJECT_ID"),
		CredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		UsersCollection: getEnv("USERS_COLLECTION", "users"),
		SMTP: SMTPConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Username: os.Getenv("EMAIL_ADDRESS"),
			Password: os.Getenv("EMAIL_PASSWORD"),
		},
	}

	rawPort := getEnv("SMTP_PORT", "587")
	port, err := strconv.Atoi(rawPort)
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid SMTP_PORT value: %q", rawPort)
	}
	cfg.SMTP.Port = port

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}
