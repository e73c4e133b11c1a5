package repository

import (
	"context"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	feedbackCollection = "feedbacks"
	reportsCollection  = "reports"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Test connection by attempting to read from a collection.
	// This fails fast on an invalid project ID or missing permissions.
	_, err = client.Collection(feedbackCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		// Other errors (like NotFound for new projects) may just mean an empty collection
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// SaveFeedback saves a feedback item to Firestore
func (f *Firestore) SaveFeedback(ctx context.Context, feedback *model.Feedback) error {
	if feedback == nil {
		return goerr.New("feedback is nil")
	}
	if feedback.ID == "" {
		return goerr.New("feedback ID is empty")
	}

	_, err := f.client.Collection(feedbackCollection).Doc(feedback.ID.String()).Set(ctx, feedback)
	if err != nil {
		return goerr.Wrap(err, "failed to save feedback to firestore")
	}

	return nil
}

// GetFeedback retrieves a feedback item by ID
func (f *Firestore) GetFeedback(ctx context.Context, id types.FeedbackID) (*model.Feedback, error) {
	if id == "" {
		return nil, goerr.New("feedback ID is empty")
	}

	doc, err := f.client.Collection(feedbackCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrFeedbackNotFound, "no such feedback",
				goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get feedback from firestore")
	}

	var feedback model.Feedback
	if err := doc.DataTo(&feedback); err != nil {
		return nil, goerr.Wrap(err, "failed to decode feedback")
	}

	return &feedback, nil
}

// ListFeedbackByRange lists feedback created in the half-open window [start, end)
func (f *Firestore) ListFeedbackByRange(ctx context.Context, start, end time.Time) ([]*model.Feedback, error) {
	// Range filter on a single field needs no composite index
	query := f.client.Collection(feedbackCollection).
		Where("CreatedAt", ">=", start).
		Where("CreatedAt", "<", end)

	iter := query.Documents(ctx)
	defer iter.Stop()

	var feedbacks []*model.Feedback
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate feedback")
		}

		var feedback model.Feedback
		if err := doc.DataTo(&feedback); err != nil {
			return nil, goerr.Wrap(err, "failed to decode feedback")
		}

		feedbacks = append(feedbacks, &feedback)
	}

	// Sort by creation time (oldest first) in memory instead of OrderBy
	sort.Slice(feedbacks, func(i, j int) bool {
		return feedbacks[i].CreatedAt.Before(feedbacks[j].CreatedAt)
	})

	return feedbacks, nil
}

// SaveReport saves a weekly report to Firestore
func (f *Firestore) SaveReport(ctx context.Context, report *model.WeeklyReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	_, err := f.client.Collection(reportsCollection).Doc(report.ID.String()).Set(ctx, report)
	if err != nil {
		return goerr.Wrap(err, "failed to save report to firestore")
	}

	return nil
}

// GetReport retrieves a weekly report by ID
func (f *Firestore) GetReport(ctx context.Context, id types.ReportID) (*model.WeeklyReport, error) {
	if id == "" {
		return nil, goerr.New("report ID is empty")
	}

	doc, err := f.client.Collection(reportsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrReportNotFound, "no such report",
				goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get report from firestore")
	}

	var report model.WeeklyReport
	if err := doc.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode report")
	}

	return &report, nil
}

// ListRecentReports lists reports ordered by generation time (newest first)
func (f *Firestore) ListRecentReports(ctx context.Context, limit int) ([]*model.WeeklyReport, error) {
	query := f.client.Collection(reportsCollection).
		OrderBy("GeneratedAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var reports []*model.WeeklyReport
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate reports")
		}

		var report model.WeeklyReport
		if err := doc.DataTo(&report); err != nil {
			return nil, goerr.Wrap(err, "failed to decode report")
		}

		reports = append(reports, &report)
	}

	return reports, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
