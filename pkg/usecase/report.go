package usecase

import (
	"context"
	"time"

	"github.com/feedpulse/feedpulse/pkg/analytics"
	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/feedpulse/feedpulse/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// ReportWindow is the length of the aggregation window
const ReportWindow = 7 * 24 * time.Hour

// Report implements the weekly report use case
type Report struct {
	repo       interfaces.Repository
	aggregator *analytics.Aggregator
	notifiers  []interfaces.Notifier
}

// NewReport creates a new Report use case
func NewReport(repo interfaces.Repository, aggregator *analytics.Aggregator, notifiers ...interfaces.Notifier) *Report {
	return &Report{
		repo:       repo,
		aggregator: aggregator,
		notifiers:  notifiers,
	}
}

// GenerateWeeklyReport aggregates the feedback of the half-open window
// [now-7d, now), persists the result and announces it to the notifiers.
// A storage failure while fetching the window degrades to an empty window
// rather than failing the run.
func (u *Report) GenerateWeeklyReport(ctx context.Context, now time.Time) (*model.WeeklyReport, error) {
	logger := ctxlog.From(ctx)

	windowEnd := now
	windowStart := now.Add(-ReportWindow)

	items, err := u.repo.ListFeedbackByRange(ctx, windowStart, windowEnd)
	if err != nil {
		logger.Error("failed to fetch feedback for report window, aggregating empty window",
			"error", err,
			"windowStart", windowStart,
			"windowEnd", windowEnd,
		)
		items = nil
	}

	report := u.aggregator.Aggregate(items, windowStart, windowEnd)

	if err := u.repo.SaveReport(ctx, report); err != nil {
		return nil, goerr.Wrap(err, "failed to save weekly report",
			goerr.V("reportID", report.ID))
	}

	logger.Info("weekly report generated",
		"reportID", report.ID,
		"totalCount", report.TotalCount,
		"averageScore", report.AverageScore,
	)

	for _, notifier := range u.notifiers {
		n := notifier
		async.Dispatch(ctx, func(ctx context.Context) error {
			return n.NotifyWeeklyReport(ctx, report)
		})
	}

	return report, nil
}

// GetReport retrieves a single weekly report
func (u *Report) GetReport(ctx context.Context, id types.ReportID) (*model.WeeklyReport, error) {
	return u.repo.GetReport(ctx, id)
}

// ListRecentReports lists recently generated reports
func (u *Report) ListRecentReports(ctx context.Context, limit int) ([]*model.WeeklyReport, error) {
	return u.repo.ListRecentReports(ctx, limit)
}
