package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/feedpulse/feedpulse/pkg/analytics"
	"github.com/feedpulse/feedpulse/pkg/cli/config"
	"github.com/feedpulse/feedpulse/pkg/usecase"
	"github.com/feedpulse/feedpulse/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdReport() *cli.Command {
	var (
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		smtpCfg      config.SMTP
		analyticsCfg config.Analytics
	)

	flags := joinFlags(
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		smtpCfg.Flags(),
		analyticsCfg.Flags(),
	)

	return &cli.Command{
		Name:  "report",
		Usage: "Generate the weekly report for the past 7 days once and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			repo, err := firestoreCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer repo.Close()

			policy, err := analyticsCfg.Configure()
			if err != nil {
				return err
			}

			notifiers := configureNotifiers(logger, &slackCfg, &smtpCfg)
			reportUC := usecase.NewReport(repo, analytics.NewAggregator(policy), notifiers...)

			report, err := reportUC.GenerateWeeklyReport(ctx, time.Now())
			if err != nil {
				return err
			}

			logger.Info("weekly report generated",
				slog.String("reportID", report.ID.String()),
				slog.Int64("totalCount", report.TotalCount),
				slog.Float64("averageScore", report.AverageScore),
			)

			// Notifications are dispatched in the background; wait for them
			// to finish before the process exits
			waitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			if err := async.Wait(waitCtx); err != nil {
				logger.Warn("gave up waiting for pending notifications", "error", err)
			}
			return nil
		},
	}
}
