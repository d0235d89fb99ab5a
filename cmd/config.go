package cmd

import (
	"fmt"
	"os"
)

// Notification channel modes.
const (
	NotificationModeConsole = "console"
	NotificationModeWebhook = "webhook"
)

// Config holds the runtime configuration read from the environment.
type Config struct {
	HTTPPort            string
	DatabaseURL         string
	JWTSecret           string
	UploadDir           string
	NotificationMode    string
	NotificationWebhook string
	SeedAdminCPF        string
	SeedAdminPassword   string
}

// LoadConfig reads and validates the configuration from the environment.
// Startup aborts on an invalid configuration rather than limping along.
func LoadConfig() (Config, error) {
	config := Config{
		HTTPPort:            envOrDefault("PORT", "3333"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		JWTSecret:           os.Getenv("JWT_SECRET"),
		UploadDir:           envOrDefault("UPLOAD_DIR", "./uploads"),
		NotificationMode:    envOrDefault("NOTIFICATION_MOCK", NotificationModeConsole),
		NotificationWebhook: os.Getenv("NOTIFICATION_WEBHOOK"),
		SeedAdminCPF:        os.Getenv("SEED_ADMIN_CPF"),
		SeedAdminPassword:   os.Getenv("SEED_ADMIN_PASSWORD"),
	}

	if config.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required")
	}
	if len(config.JWTSecret) < 10 {
		return Config{}, fmt.Errorf("JWT_SECRET is required and must be at least 10 characters")
	}

	switch config.NotificationMode {
	case NotificationModeConsole:
	case NotificationModeWebhook:
		if config.NotificationWebhook == "" {
			return Config{}, fmt.Errorf("NOTIFICATION_WEBHOOK is required in webhook mode")
		}
	default:
		return Config{}, fmt.Errorf(
			"NOTIFICATION_MOCK must be %q or %q, got %q",
			NotificationModeConsole, NotificationModeWebhook, config.NotificationMode)
	}

	return config, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
