package model

import (
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/types"
)

// TermCount is one entry of a frequency ranking
type TermCount struct {
	Term  string `json:"term"`
	Count int64  `json:"count"`
}

// WeeklyReport holds the aggregated statistics of feedback items collected
// in the half-open window [WindowStart, WindowEnd). It is a pure function of
// the items in its window and is never mutated after construction.
type WeeklyReport struct {
	ID             types.ReportID   `json:"id"`
	GeneratedAt    time.Time        `json:"generatedAt"`
	WindowStart    time.Time        `json:"windowStart"`
	WindowEnd      time.Time        `json:"windowEnd"`
	TotalCount     int64            `json:"totalCount"`
	AverageScore   float64          `json:"averageScore"`
	MaxScore       int              `json:"maxScore"`
	MinScore       int              `json:"minScore"`
	CountByUrgency map[string]int64 `json:"countByUrgency"`
	CountByDay     map[string]int64 `json:"countByDay"`
	TopWords       []TermCount      `json:"topWords"`
	TopPhrases     []TermCount      `json:"topPhrases"`
}

// NewWeeklyReport creates an empty report for the given window with identity
// and generation time assigned. Numeric fields stay zeroed and rankings empty
// until the aggregator fills them in, which is also the defined result for a
// window without any items.
func NewWeeklyReport(windowStart, windowEnd time.Time) *WeeklyReport {
	return &WeeklyReport{
		ID:             types.NewReportID(),
		GeneratedAt:    time.Now(),
		WindowStart:    windowStart,
		WindowEnd:      windowEnd,
		CountByUrgency: map[string]int64{},
		CountByDay:     map[string]int64{},
		TopWords:       []TermCount{},
		TopPhrases:     []TermCount{},
	}
}
