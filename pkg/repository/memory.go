package repository

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/interfaces"
	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu        sync.RWMutex
	feedbacks map[types.FeedbackID]*model.Feedback
	reports   map[types.ReportID]*model.WeeklyReport
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		feedbacks: make(map[types.FeedbackID]*model.Feedback),
		reports:   make(map[types.ReportID]*model.WeeklyReport),
	}
}

// SaveFeedback saves a feedback item to memory
func (m *Memory) SaveFeedback(ctx context.Context, feedback *model.Feedback) error {
	if feedback == nil {
		return goerr.New("feedback is nil")
	}
	if feedback.ID == "" {
		return goerr.New("feedback ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Store a copy to keep the saved item immutable
	fbCopy := *feedback
	m.feedbacks[feedback.ID] = &fbCopy
	return nil
}

// GetFeedback retrieves a feedback item by ID
func (m *Memory) GetFeedback(ctx context.Context, id types.FeedbackID) (*model.Feedback, error) {
	if id == "" {
		return nil, goerr.New("feedback ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	fb, exists := m.feedbacks[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrFeedbackNotFound, "no such feedback",
			goerr.V("id", id))
	}

	fbCopy := *fb
	return &fbCopy, nil
}

// ListFeedbackByRange lists feedback created in the half-open window [start, end)
func (m *Memory) ListFeedbackByRange(ctx context.Context, start, end time.Time) ([]*model.Feedback, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var feedbacks []*model.Feedback
	for _, fb := range m.feedbacks {
		if fb.CreatedAt.Before(start) || !fb.CreatedAt.Before(end) {
			continue
		}
		fbCopy := *fb
		feedbacks = append(feedbacks, &fbCopy)
	}

	// Sort by creation time (oldest first) for deterministic results
	sort.Slice(feedbacks, func(i, j int) bool {
		return feedbacks[i].CreatedAt.Before(feedbacks[j].CreatedAt)
	})

	return feedbacks, nil
}

// SaveReport saves a weekly report to memory
func (m *Memory) SaveReport(ctx context.Context, report *model.WeeklyReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.reports[report.ID] = cloneReport(report)
	return nil
}

// GetReport retrieves a weekly report by ID
func (m *Memory) GetReport(ctx context.Context, id types.ReportID) (*model.WeeklyReport, error) {
	if id == "" {
		return nil, goerr.New("report ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	report, exists := m.reports[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrReportNotFound, "no such report",
			goerr.V("id", id))
	}

	return cloneReport(report), nil
}

// ListRecentReports lists reports ordered by generation time (newest first)
func (m *Memory) ListRecentReports(ctx context.Context, limit int) ([]*model.WeeklyReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var reports []*model.WeeklyReport
	for _, report := range m.reports {
		reports = append(reports, cloneReport(report))
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].GeneratedAt.After(reports[j].GeneratedAt)
	})

	if limit > 0 && len(reports) > limit {
		reports = reports[:limit]
	}

	return reports, nil
}

// cloneReport copies a report including its maps and ranking slices, so
// stored and returned values never share state with the caller
func cloneReport(report *model.WeeklyReport) *model.WeeklyReport {
	repCopy := *report
	repCopy.CountByUrgency = maps.Clone(report.CountByUrgency)
	repCopy.CountByDay = maps.Clone(report.CountByDay)
	repCopy.TopWords = slices.Clone(report.TopWords)
	repCopy.TopPhrases = slices.Clone(report.TopPhrases)
	return &repCopy
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
