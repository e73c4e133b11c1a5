package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestNewFeedback(t *testing.T) {
	fb := gt.R1(model.NewFeedback("", "entrega atrasada", 2, types.UrgencyCritical, time.Time{})).NoError(t)

	gt.True(t, fb.ID != "")
	gt.Equal(t, fb.Description, "entrega atrasada")
	gt.Equal(t, fb.Score, 2)
	gt.Equal(t, fb.Urgency, types.UrgencyCritical)
	gt.False(t, fb.CreatedAt.IsZero())
}

func TestNewFeedbackKeepsGivenIdentity(t *testing.T) {
	id := types.NewFeedbackID()
	createdAt := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	fb := gt.R1(model.NewFeedback(id, "ok", 5, types.UrgencyHigh, createdAt)).NoError(t)

	gt.Equal(t, fb.ID, id)
	gt.Equal(t, fb.CreatedAt, createdAt)
}

func TestNewFeedbackValidation(t *testing.T) {
	cases := map[string]struct {
		description string
		score       int
		urgency     types.Urgency
	}{
		"blank description": {"   ", 5, types.UrgencyNormal},
		"empty description": {"", 5, types.UrgencyNormal},
		"score below range": {"ok", -1, types.UrgencyNormal},
		"score above range": {"ok", 11, types.UrgencyNormal},
		"unknown urgency":   {"ok", 5, types.Urgency("severe")},
		"empty urgency":     {"ok", 5, types.Urgency("")},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := model.NewFeedback("", tc.description, tc.score, tc.urgency, time.Time{})
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrInvalidFeedback))
		})
	}
}

func TestNewFeedbackAcceptsScoreBounds(t *testing.T) {
	for _, score := range []int{model.MinScore, model.MaxScore} {
		fb := gt.R1(model.NewFeedback("", "ok", score, types.UrgencyNormal, time.Time{})).NoError(t)
		gt.Equal(t, fb.Score, score)
	}
}
