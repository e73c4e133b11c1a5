package config

import (
	"log/slog"

	slackSvc "github.com/feedpulse/feedpulse/pkg/service/slack"
	"github.com/urfave/cli/v3"
)

// Slack holds Slack notification configuration
type Slack struct {
	OAuthToken string
	ChannelID  string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for API access",
			Category:    "Slack",
			Sources:     cli.EnvVars("FEEDPULSE_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for alerts and report summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("FEEDPULSE_SLACK_CHANNEL"),
			Destination: &s.ChannelID,
		},
	}
}

// ConfigureOptional creates a Slack notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *slackSvc.Service {
	if !s.IsConfigured() {
		logger.Warn("Slack not configured - notifications will not be sent")
		return nil
	}

	logger.Info("Configuring Slack notifier", "channel", s.ChannelID)
	return slackSvc.New(s.OAuthToken, s.ChannelID)
}

// IsConfigured checks if Slack is properly configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.ChannelID != ""
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.ChannelID),
	)
}
