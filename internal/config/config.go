package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application configuration. It is loaded once at startup
// and passed into constructors; request handling never reads the
// environment.
type Config struct {
	Port        string
	Env         string
	LogLevel    string
	AllowOrigin string

	SendGridAPIKey string
	FromEmail      string
	SupportEmail   string

	NotifyProvider string
	NotifyTimeout  time.Duration
	MailHost       string
	MailPort       int
	MailUser       string
	MailPass       string

	LogPath     string
	DatabaseURL string

	LeadProfile    string
	RequiredFields []string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "5055"),
		Env:         getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		AllowOrigin: getEnv("ALLOW_ORIGIN", "*"),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		FromEmail:      getEnv("FROM_EMAIL", ""),
		SupportEmail:   getEnv("SUPPORT_EMAIL", ""),

		NotifyProvider: strings.ToLower(getEnv("NOTIFY_PROVIDER", "sendgrid")),
		NotifyTimeout:  getEnvAsDuration("NOTIFY_TIMEOUT", 10*time.Second),
		MailHost:       getEnv("MAIL_HOST", ""),
		MailPort:       getEnvAsInt("MAIL_PORT", 587),
		MailUser:       getEnv("MAIL_USER", ""),
		MailPass:       getEnv("MAIL_PASS", ""),

		LogPath:     getEnv("LOG_PATH", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),

		LeadProfile:    getEnv("LEAD_PROFILE", "invoicechaser"),
		RequiredFields: getEnvAsList("REQUIRED_FIELDS"),
	}
}


// MissingNotify returns the names of notify configuration variables that
// are required for the selected provider but absent. An empty result
// means the service can send.
func (c *Config) MissingNotify() []string {
	var missing []string

	if c.NotifyProvider == "smtp" {
		if c.MailHost == "" {
			missing = append(missing, "MAIL_HOST")
		}
	} else {
		if c.SendGridAPIKey == "" {
			missing = append(missing, "SENDGRID_API_KEY")
		}
	}
	if c.FromEmail == "" {
		missing = append(missing, "FROM_EMAIL")
	}
	if c.SupportEmail == "" {
		missing = append(missing, "SUPPORT_EMAIL")
	}
	return missing
}


func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
