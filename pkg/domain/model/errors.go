package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrFeedbackNotFound = goerr.New("feedback not found")
	ErrReportNotFound   = goerr.New("report not found")
	ErrInvalidFeedback  = goerr.New("invalid feedback")
)
