package cli

import (
	"log/slog"

	"github.com/feedpulse/feedpulse/pkg/cli/config"
	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/urfave/cli/v3"
)

// joinFlags combines multiple flag slices into one
func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, f := range flags {
		result = append(result, f...)
	}
	return result
}

// configureNotifiers builds the notifier list from the optional Slack and
// SMTP configurations
func configureNotifiers(logger *slog.Logger, slackCfg *config.Slack, smtpCfg *config.SMTP) []interfaces.Notifier {
	var notifiers []interfaces.Notifier
	if svc := slackCfg.ConfigureOptional(logger); svc != nil {
		notifiers = append(notifiers, svc)
	}
	if svc := smtpCfg.ConfigureOptional(logger); svc != nil {
		notifiers = append(notifiers, svc)
	}
	return notifiers
}
