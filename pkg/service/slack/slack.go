package slack

import (
	"context"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service posts feedback notifications to a Slack channel
type Service struct {
	client    *slack.Client
	channelID string
}

// New creates a new Slack service posting to the given channel
func New(token, channelID string) *Service {
	return &Service{
		client:    slack.New(token),
		channelID: channelID,
	}
}

// NotifyCriticalFeedback posts an alert message for a critical feedback item
func (s *Service) NotifyCriticalFeedback(ctx context.Context, feedback *model.Feedback) error {
	if feedback == nil {
		return goerr.New("feedback is nil")
	}

	blocks := buildCriticalFeedbackBlocks(feedback)
	_, _, err := s.client.PostMessageContext(ctx, s.channelID, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return goerr.Wrap(err, "failed to post critical feedback alert",
			goerr.V("channelID", s.channelID),
			goerr.V("feedbackID", feedback.ID),
		)
	}

	return nil
}

// NotifyWeeklyReport posts the summary message of a generated weekly report
func (s *Service) NotifyWeeklyReport(ctx context.Context, report *model.WeeklyReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	blocks := buildWeeklyReportBlocks(report)
	_, _, err := s.client.PostMessageContext(ctx, s.channelID, slack.MsgOptionBlocks(blocks...))
	if err != nil {
		return goerr.Wrap(err, "failed to post weekly report summary",
			goerr.V("channelID", s.channelID),
			goerr.V("reportID", report.ID),
		)
	}

	return nil
}
