package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/feedpulse/feedpulse/pkg/analytics"
	"github.com/feedpulse/feedpulse/pkg/cli/config"
	controller "github.com/feedpulse/feedpulse/pkg/controller/http"
	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/feedpulse/feedpulse/pkg/usecase"
	"github.com/feedpulse/feedpulse/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg    config.Server
		firestoreCfg config.Firestore
		slackCfg     config.Slack
		smtpCfg      config.SMTP
		analyticsCfg config.Analytics
		schedulerCfg config.Scheduler
	)

	flags := joinFlags(
		serverCfg.Flags(),
		firestoreCfg.Flags(),
		slackCfg.Flags(),
		smtpCfg.Flags(),
		analyticsCfg.Flags(),
		schedulerCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start HTTP server with the scheduled weekly report",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting feedpulse server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("firestore", firestoreCfg),
				slog.Any("slack", slackCfg),
				slog.Any("smtp", smtpCfg),
				slog.Any("scheduler", schedulerCfg),
			)

			if err := schedulerCfg.Validate(); err != nil {
				return err
			}

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

			ingestUC := usecase.NewIngest(repo, policy.CriticalThreshold, notifiers...)
			reportUC := usecase.NewReport(repo, analytics.NewAggregator(policy), notifiers...)

			server := controller.NewServer(ctx, serverCfg.Addr, ingestUC, reportUC)

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Weekly report scheduler
			schedCtx, stopScheduler := context.WithCancel(ctx)
			defer stopScheduler()
			if !schedulerCfg.Disabled {
				go runReportSchedule(schedCtx, &schedulerCfg, reportUC)
			}

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			stopScheduler()

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// runReportSchedule generates the weekly report at the configured weekday
// and hour until the context is cancelled
func runReportSchedule(ctx context.Context, cfg *config.Scheduler, reportUC interfaces.Report) {
	logger := ctxlog.From(ctx)

	for {
		next, err := cfg.Next(time.Now())
		if err != nil {
			apperr.Handle(ctx, err)
			return
		}

		logger.Info("next weekly report scheduled", slog.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if _, err := reportUC.GenerateWeeklyReport(ctx, time.Now()); err != nil {
			apperr.Handle(ctx, err)
		}
	}
}
