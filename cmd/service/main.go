package main

import (
	"log/slog"

	"github.com/joho/godotenv"

	"gitlab.com/cielprofs/website-backend/internal/config"
	"gitlab.com/cielprofs/website-backend/internal/logging"
	"gitlab.com/cielprofs/website-backend/internal/mail"
	"gitlab.com/cielprofs/website-backend/internal/service"
	"gitlab.com/cielprofs/website-backend/internal/store"
)

// Usage example on the command line:
// > DB_PATH=ciel.db PORT=5000 GIN_MODE=release GIN_LOGGING=OFF go run main.go
func main() {
	// A .env file is convenient in development; in production the real
	// environment wins.
	_ = godotenv.Load()
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "error", err)
	}

	sqlDB, err := store.Open(cfg.DBPath)
	if err != nil {
		logging.Fatal("could not open database", "path", cfg.DBPath, "error", err)
	}
	st, err := store.New(sqlDB)
	if err != nil {
		logging.Fatal("could not initialize storage", "error", err)
	}
	defer st.Close()

	var notifier *mail.Notifier
	if cfg.MailEnabled() {
		sender, err := mail.NewSMTPSender(mail.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
			From:     cfg.MailFrom,
		})
		if err != nil {
			logging.Fatal("could not create mail sender", "error", err)
		}
		notifier = mail.NewNotifier(sender, cfg.AdminEmail)
		slog.Info("contact notifications enabled", "relay", cfg.SMTPHost)
	} else {
		slog.Info("mail relay not configured, contact notifications disabled")
	}

	router := service.New(st, notifier).SetupHttpRouter(cfg.AllowedOrigins)
	slog.Info("server started", "port", cfg.Port, "database", cfg.DBPath)
	if err := router.Run(":" + cfg.Port); err != nil {
		logging.Fatal("server stopped", "error", err)
	}
}
