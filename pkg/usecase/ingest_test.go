package usecase_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/feedpulse/feedpulse/pkg/repository"
	"github.com/feedpulse/feedpulse/pkg/usecase"
	"github.com/m-mizutani/gt"
)

// mockNotifier records notifications and signals each delivery
type mockNotifier struct {
	mu        sync.Mutex
	feedbacks []*model.Feedback
	reports   []*model.WeeklyReport
	delivered chan struct{}
}

func newMockNotifier() *mockNotifier {
	return &mockNotifier{
		delivered: make(chan struct{}, 16),
	}
}

func (m *mockNotifier) NotifyCriticalFeedback(ctx context.Context, feedback *model.Feedback) error {
	m.mu.Lock()
	m.feedbacks = append(m.feedbacks, feedback)
	m.mu.Unlock()
	m.delivered <- struct{}{}
	return nil
}

func (m *mockNotifier) NotifyWeeklyReport(ctx context.Context, report *model.WeeklyReport) error {
	m.mu.Lock()
	m.reports = append(m.reports, report)
	m.mu.Unlock()
	m.delivered <- struct{}{}
	return nil
}

func (m *mockNotifier) waitDelivery(t *testing.T) {
	t.Helper()
	select {
	case <-m.delivered:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func (m *mockNotifier) criticalFeedbacks() []*model.Feedback {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.Feedback{}, m.feedbacks...)
}

func (m *mockNotifier) weeklyReports() []*model.WeeklyReport {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*model.WeeklyReport{}, m.reports...)
}

func TestSubmitFeedback(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.NewIngest(repo, model.DefaultCriticalThreshold)

	fb, err := uc.SubmitFeedback(ctx, "atendimento razoável", 5)
	gt.NoError(t, err).Required()
	gt.Equal(t, fb.Urgency, types.UrgencyHigh)
	gt.True(t, fb.ID != "")
	gt.False(t, fb.CreatedAt.IsZero())

	// The item must be retrievable right after submission
	retrieved, err := uc.GetFeedback(ctx, fb.ID)
	gt.NoError(t, err)
	gt.Equal(t, retrieved.Description, "atendimento razoável")
	gt.Equal(t, retrieved.Score, 5)
}

func TestSubmitFeedbackClassification(t *testing.T) {
	cases := []struct {
		score   int
		urgency types.Urgency
	}{
		{0, types.UrgencyCritical},
		{3, types.UrgencyCritical},
		{4, types.UrgencyHigh},
		{6, types.UrgencyHigh},
		{7, types.UrgencyNormal},
		{10, types.UrgencyNormal},
	}

	ctx := context.Background()
	uc := usecase.NewIngest(repository.NewMemory(), model.DefaultCriticalThreshold)

	for _, tc := range cases {
		fb, err := uc.SubmitFeedback(ctx, "ok", tc.score)
		gt.NoError(t, err).Required()
		gt.Equal(t, fb.Urgency, tc.urgency)
	}
}

func TestSubmitFeedbackInvalid(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.NewIngest(repo, model.DefaultCriticalThreshold)

	cases := map[string]struct {
		description string
		score       int
	}{
		"blank description": {"   ", 5},
		"score below range": {"ok", -1},
		"score above range": {"ok", 11},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.SubmitFeedback(ctx, tc.description, tc.score)
			gt.Error(t, err)
			gt.True(t, errors.Is(err, model.ErrInvalidFeedback))
		})
	}

	// Nothing must reach storage
	listed, err := repo.ListFeedbackByRange(ctx,
		time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	gt.NoError(t, err)
	gt.A(t, listed).Length(0)
}

func TestSubmitFeedbackNotifiesOnCritical(t *testing.T) {
	ctx := context.Background()
	notifier := newMockNotifier()
	uc := usecase.NewIngest(repository.NewMemory(), model.DefaultCriticalThreshold, notifier)

	fb, err := uc.SubmitFeedback(ctx, "entrega nunca chegou", 1)
	gt.NoError(t, err).Required()
	gt.Equal(t, fb.Urgency, types.UrgencyCritical)

	notifier.waitDelivery(t)
	notified := notifier.criticalFeedbacks()
	gt.A(t, notified).Length(1)
	gt.Equal(t, notified[0].ID, fb.ID)
}

func TestSubmitFeedbackSkipsNotificationBelowCritical(t *testing.T) {
	ctx := context.Background()
	notifier := newMockNotifier()
	uc := usecase.NewIngest(repository.NewMemory(), model.DefaultCriticalThreshold, notifier)

	fb, err := uc.SubmitFeedback(ctx, "tudo certo", 8)
	gt.NoError(t, err).Required()
	gt.Equal(t, fb.Urgency, types.UrgencyNormal)

	select {
	case <-notifier.delivered:
		t.Fatal("normal feedback must not notify")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubmitFeedbackNotifierFailureDoesNotFailSubmission(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewIngest(repository.NewMemory(), model.DefaultCriticalThreshold,
		&failingNotifier{})

	fb, err := uc.SubmitFeedback(ctx, "péssimo atendimento", 0)
	gt.NoError(t, err)
	gt.Equal(t, fb.Urgency, types.UrgencyCritical)
}

// failingNotifier always fails, to prove notification is best-effort
type failingNotifier struct{}

func (f *failingNotifier) NotifyCriticalFeedback(ctx context.Context, feedback *model.Feedback) error {
	return errors.New("channel is down")
}

func (f *failingNotifier) NotifyWeeklyReport(ctx context.Context, report *model.WeeklyReport) error {
	return errors.New("channel is down")
}
