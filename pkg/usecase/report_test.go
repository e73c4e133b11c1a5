package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/feedpulse/feedpulse/pkg/analytics"
	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/repository"
	"github.com/feedpulse/feedpulse/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func submit(t *testing.T, uc *usecase.Ingest, description string, score int) {
	t.Helper()
	_, err := uc.SubmitFeedback(context.Background(), description, score)
	gt.NoError(t, err).Required()
}

func TestGenerateWeeklyReport(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	ingest := usecase.NewIngest(repo, model.DefaultCriticalThreshold)

	submit(t, ingest, "entrega atrasada", 2)
	submit(t, ingest, "atendimento razoável", 5)
	submit(t, ingest, "entrega perfeita", 9)

	uc := usecase.NewReport(repo, analytics.NewAggregator(nil))
	report, err := uc.GenerateWeeklyReport(ctx, time.Now())
	gt.NoError(t, err).Required()

	gt.Equal(t, report.TotalCount, int64(3))
	gt.Equal(t, report.MaxScore, 9)
	gt.Equal(t, report.MinScore, 2)
	gt.Equal(t, report.CountByUrgency["critical"], int64(1))
	gt.Equal(t, report.CountByUrgency["high"], int64(1))
	gt.Equal(t, report.CountByUrgency["normal"], int64(1))
	gt.A(t, report.TopWords).Has(model.TermCount{Term: "entrega", Count: 2})

	// The report must be persisted and retrievable
	retrieved, err := uc.GetReport(ctx, report.ID)
	gt.NoError(t, err)
	gt.Equal(t, retrieved.TotalCount, int64(3))
}

func TestGenerateWeeklyReportWindow(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	now := time.Now()

	inWindow := gt.R1(model.NewFeedback("", "dentro da janela", 5, "normal", now.Add(-24*time.Hour))).NoError(t)
	gt.NoError(t, repo.SaveFeedback(ctx, inWindow))
	tooOld := gt.R1(model.NewFeedback("", "fora da janela", 5, "normal", now.Add(-8*24*time.Hour))).NoError(t)
	gt.NoError(t, repo.SaveFeedback(ctx, tooOld))

	uc := usecase.NewReport(repo, analytics.NewAggregator(nil))
	report, err := uc.GenerateWeeklyReport(ctx, now)
	gt.NoError(t, err).Required()

	gt.Equal(t, report.TotalCount, int64(1))
	gt.Equal(t, report.WindowEnd, now)
	gt.Equal(t, report.WindowStart, now.Add(-usecase.ReportWindow))
}

func TestGenerateWeeklyReportEmptyWindow(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewReport(repository.NewMemory(), analytics.NewAggregator(nil))

	report, err := uc.GenerateWeeklyReport(ctx, time.Now())
	gt.NoError(t, err).Required()

	gt.Equal(t, report.TotalCount, int64(0))
	gt.Equal(t, report.AverageScore, 0.0)
	gt.A(t, report.TopWords).Length(0)
	gt.A(t, report.TopPhrases).Length(0)
}

func TestGenerateWeeklyReportDegradesOnFetchFailure(t *testing.T) {
	ctx := context.Background()
	repo := &fetchFailingRepo{Repository: repository.NewMemory()}

	uc := usecase.NewReport(repo, analytics.NewAggregator(nil))
	report, err := uc.GenerateWeeklyReport(ctx, time.Now())
	gt.NoError(t, err).Required()

	// A broken fetch yields an empty-window report, still persisted
	gt.Equal(t, report.TotalCount, int64(0))
	retrieved, err := uc.GetReport(ctx, report.ID)
	gt.NoError(t, err)
	gt.Equal(t, retrieved.ID, report.ID)
}

func TestGenerateWeeklyReportNotifies(t *testing.T) {
	ctx := context.Background()
	notifier := newMockNotifier()
	uc := usecase.NewReport(repository.NewMemory(), analytics.NewAggregator(nil), notifier)

	report, err := uc.GenerateWeeklyReport(ctx, time.Now())
	gt.NoError(t, err).Required()

	notifier.waitDelivery(t)
	notified := notifier.weeklyReports()
	gt.A(t, notified).Length(1)
	gt.Equal(t, notified[0].ID, report.ID)
}

func TestListRecentReports(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	uc := usecase.NewReport(repo, analytics.NewAggregator(nil))

	for i := 0; i < 3; i++ {
		_, err := uc.GenerateWeeklyReport(ctx, time.Now())
		gt.NoError(t, err).Required()
	}

	listed, err := uc.ListRecentReports(ctx, 2)
	gt.NoError(t, err)
	gt.A(t, listed).Length(2)
}

// fetchFailingRepo fails every window fetch while keeping writes working
type fetchFailingRepo struct {
	interfaces.Repository
}

func (r *fetchFailingRepo) ListFeedbackByRange(ctx context.Context, start, end time.Time) ([]*model.Feedback, error) {
	return nil, goerr.New("storage unavailable")
}
