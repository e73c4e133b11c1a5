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

// Ingest implements the feedback ingestion use case
type Ingest struct {
	repo              interfaces.Repository
	notifiers         []interfaces.Notifier
	criticalThreshold int
}

// NewIngest creates a new Ingest use case. Notifiers receive an alert for
// every critical feedback; passing none disables alerting.
func NewIngest(repo interfaces.Repository, criticalThreshold int, notifiers ...interfaces.Notifier) *Ingest {
	return &Ingest{
		repo:              repo,
		notifiers:         notifiers,
		criticalThreshold: criticalThreshold,
	}
}

// SubmitFeedback validates and classifies a feedback submission, persists
// it, and alerts the notifiers when the item is critical. Notification is
// best-effort and runs in the background so a broken channel never fails
// an accepted submission.
func (u *Ingest) SubmitFeedback(ctx context.Context, description string, score int) (*model.Feedback, error) {
	// Score must be valid before it reaches the classifier
	if score < model.MinScore || score > model.MaxScore {
		return nil, goerr.Wrap(model.ErrInvalidFeedback, "score out of range",
			goerr.V("score", score))
	}

	urgency := analytics.ClassifyUrgency(score, u.criticalThreshold)

	feedback, err := model.NewFeedback("", description, score, urgency, time.Time{})
	if err != nil {
		return nil, err
	}

	if err := u.repo.SaveFeedback(ctx, feedback); err != nil {
		return nil, goerr.Wrap(err, "failed to save feedback",
			goerr.V("feedbackID", feedback.ID))
	}

	logger := ctxlog.From(ctx)
	logger.Info("feedback ingested",
		"feedbackID", feedback.ID,
		"score", feedback.Score,
		"urgency", feedback.Urgency,
	)

	if feedback.Urgency == types.UrgencyCritical {
		logger.Warn("critical feedback received, notifying",
			"feedbackID", feedback.ID,
			"score", feedback.Score,
		)
		for _, notifier := range u.notifiers {
			n := notifier
			async.Dispatch(ctx, func(ctx context.Context) error {
				return n.NotifyCriticalFeedback(ctx, feedback)
			})
		}
	}

	return feedback, nil
}

// GetFeedback retrieves a single feedback item
func (u *Ingest) GetFeedback(ctx context.Context, id types.FeedbackID) (*model.Feedback, error) {
	return u.repo.GetFeedback(ctx, id)
}
