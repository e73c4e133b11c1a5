package types

import (
	"github.com/google/uuid"
)

// FeedbackID represents a feedback submission identifier
type FeedbackID string

// String returns the string representation
func (id FeedbackID) String() string {
	return string(id)
}

// NewFeedbackID creates a new FeedbackID
func NewFeedbackID() FeedbackID {
	return FeedbackID(uuid.New().String())
}

// ReportID represents a weekly report identifier
type ReportID string

// String returns the string representation
func (id ReportID) String() string {
	return string(id)
}

// NewReportID creates a new ReportID
func NewReportID() ReportID {
	return ReportID(uuid.New().String())
}
