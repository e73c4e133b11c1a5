package model

import (
	"strings"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Score bounds for a feedback submission
const (
	MinScore = 0
	MaxScore = 10
)

// Feedback represents one submitted piece of feedback.
// It is constructed once at ingestion and never mutated afterwards.
type Feedback struct {
	ID          types.FeedbackID `json:"id"`
	Description string           `json:"description"`
	Score       int              `json:"score"`
	Urgency     types.Urgency    `json:"urgency"`
	CreatedAt   time.Time        `json:"createdAt"`
}

// NewFeedback creates a validated Feedback. The ID and creation time are
// assigned here when absent; urgency must already be derived from the score
// by the caller and is set exactly once.
func NewFeedback(id types.FeedbackID, description string, score int, urgency types.Urgency, createdAt time.Time) (*Feedback, error) {
	if strings.TrimSpace(description) == "" {
		return nil, goerr.Wrap(ErrInvalidFeedback, "description is required")
	}
	if score < MinScore || score > MaxScore {
		return nil, goerr.Wrap(ErrInvalidFeedback, "score out of range",
			goerr.V("score", score))
	}
	if !urgency.IsValid() {
		return nil, goerr.Wrap(ErrInvalidFeedback, "invalid urgency",
			goerr.V("urgency", urgency))
	}

	if id == "" {
		id = types.NewFeedbackID()
	}
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return &Feedback{
		ID:          id,
		Description: description,
		Score:       score,
		Urgency:     urgency,
		CreatedAt:   createdAt,
	}, nil
}
