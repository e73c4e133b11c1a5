package interfaces

import (
	"context"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Feedback operations
	SaveFeedback(ctx context.Context, feedback *model.Feedback) error
	GetFeedback(ctx context.Context, id types.FeedbackID) (*model.Feedback, error)
	// ListFeedbackByRange returns feedback whose creation time falls in the
	// half-open window [start, end). The result may be empty.
	ListFeedbackByRange(ctx context.Context, start, end time.Time) ([]*model.Feedback, error)

	// Report operations
	SaveReport(ctx context.Context, report *model.WeeklyReport) error
	GetReport(ctx context.Context, id types.ReportID) (*model.WeeklyReport, error)
	ListRecentReports(ctx context.Context, limit int) ([]*model.WeeklyReport, error)

	// Close closes the repository connection
	Close() error
}
