package interfaces

import (
	"context"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
)

// Notifier delivers outbound notifications. Implementations are best-effort:
// a delivery failure is reported as an error for logging but must never block
// or fail the ingestion and aggregation flows that trigger it.
type Notifier interface {
	// NotifyCriticalFeedback alerts about a newly ingested critical feedback
	NotifyCriticalFeedback(ctx context.Context, feedback *model.Feedback) error
	// NotifyWeeklyReport sends the summary of a generated weekly report
	NotifyWeeklyReport(ctx context.Context, report *model.WeeklyReport) error
}
