package interfaces

import (
	"context"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
)

// Ingest defines the feedback ingestion use case
type Ingest interface {
	SubmitFeedback(ctx context.Context, description string, score int) (*model.Feedback, error)
	GetFeedback(ctx context.Context, id types.FeedbackID) (*model.Feedback, error)
}

// Report defines the weekly report use case
type Report interface {
	GenerateWeeklyReport(ctx context.Context, now time.Time) (*model.WeeklyReport, error)
	GetReport(ctx context.Context, id types.ReportID) (*model.WeeklyReport, error)
	ListRecentReports(ctx context.Context, limit int) ([]*model.WeeklyReport, error)
}
