package config

import (
	"log/slog"

	mailSvc "github.com/feedpulse/feedpulse/pkg/service/mail"
	"github.com/urfave/cli/v3"
)

// SMTP holds mail notification configuration
type SMTP struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Flags returns CLI flags for SMTP configuration
func (s *SMTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "smtp-host",
			Usage:       "SMTP server host",
			Category:    "Mail",
			Sources:     cli.EnvVars("FEEDPULSE_SMTP_HOST"),
			Destination: &s.Host,
		},
		&cli.IntFlag{
			Name:        "smtp-port",
			Usage:       "SMTP server port",
			Category:    "Mail",
			Value:       587,
			Sources:     cli.EnvVars("FEEDPULSE_SMTP_PORT"),
			Destination: &s.Port,
		},
		&cli.StringFlag{
			Name:        "smtp-username",
			Usage:       "SMTP username",
			Category:    "Mail",
			Sources:     cli.EnvVars("FEEDPULSE_SMTP_USERNAME"),
			Destination: &s.Username,
		},
		&cli.StringFlag{
			Name:        "smtp-password",
			Usage:       "SMTP password",
			Category:    "Mail",
			Sources:     cli.EnvVars("FEEDPULSE_SMTP_PASSWORD"),
			Destination: &s.Password,
		},
		&cli.StringFlag{
			Name:        "mail-from",
			Usage:       "Sender address for notification mails",
			Category:    "Mail",
			Sources:     cli.EnvVars("FEEDPULSE_MAIL_FROM"),
			Destination: &s.From,
		},
		&cli.StringFlag{
			Name:        "mail-to",
			Usage:       "Recipient address for alerts and weekly reports",
			Category:    "Mail",
			Sources:     cli.EnvVars("FEEDPULSE_MAIL_TO"),
			Destination: &s.To,
		},
	}
}

// ConfigureOptional creates a mail notifier if configured, returns nil if not
func (s *SMTP) ConfigureOptional(logger *slog.Logger) *mailSvc.Service {
	if !s.IsConfigured() {
		logger.Warn("SMTP not configured - mail notifications will not be sent")
		return nil
	}

	logger.Info("Configuring mail notifier", "host", s.Host, "to", s.To)
	return mailSvc.New(s.Host, s.Port, s.Username, s.Password, s.From, s.To)
}

// IsConfigured checks if SMTP is properly configured
func (s *SMTP) IsConfigured() bool {
	return s.Host != "" && s.From != "" && s.To != ""
}

// LogValue returns structured log value
func (s SMTP) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("host", s.Host),
		slog.Int("port", s.Port),
		slog.Bool("has_credentials", s.Username != ""),
		slog.String("to", s.To),
	)
}
