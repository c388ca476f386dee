package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// defaultOrigins is the CORS allow-list used when ALLOWED_ORIGINS is not set.
var defaultOrigins = []string{"https://cielprofs.com", "https://www.cielprofs.com"}

// Config contains the complete runtime configuration of the service. It is
// constructed once at process start and handed to the components that need
// it; nothing in this repository reads environment variables after startup.
type Config struct {
	// DBPath is the location of the SQLite database file.
	DBPath string

	// Port is the TCP port the HTTP server binds to.
	Port string

	// AllowedOrigins is the CORS allow-list applied to all /api routes.
	AllowedOrigins []string

	// SMTPHost, SMTPPort, SMTPUsername and SMTPPassword describe the
	// outbound mail relay. An empty SMTPHost disables notifications.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// MailFrom is the sender address on outgoing mail. Falls back to
	// SMTPUsername when not set.
	MailFrom string

	// AdminEmail receives the contact-form alert mails.
	AdminEmail string
}

// Load reads the configuration from environment variables. All values have
// development-friendly defaults except the mail settings, which stay empty
// and leave the notification path disabled.
func Load() (Config, error) {
	cfg := Config{
		DBPath:       envOrDefault("DB_PATH", "ciel.db"),
		Port:         envOrDefault("PORT", "5000"),
		SMTPHost:     strings.TrimSpace(os.Getenv("SMTP_HOST")),
		SMTPUsername: strings.TrimSpace(os.Getenv("SMTP_USERNAME")),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     strings.TrimSpace(os.Getenv("MAIL_FROM")),
		AdminEmail:   strings.TrimSpace(os.Getenv("ADMIN_EMAIL")),
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric: %q", cfg.Port)
	}

	smtpPort := envOrDefault("SMTP_PORT", "587")
	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT must be numeric: %q", smtpPort)
	}
	cfg.SMTPPort = port

	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUsername
	}

	cfg.AllowedOrigins = parseOrigins(os.Getenv("ALLOWED_ORIGINS"))

	return cfg, nil
}

// MailEnabled reports whether the notification path can operate. Both a
// relay host and an admin recipient are needed; anything less keeps the
// contact flow storage-only.
func (c Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.AdminEmail != ""
}

// parseOrigins splits the comma-separated ALLOWED_ORIGINS value, dropping
// empty entries. An empty value yields the production site domains.
func parseOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return defaultOrigins
	}
	return origins
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
