package mail

import (
	"context"
	"fmt"
	"strings"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/mail.v2"
)

// Service sends feedback notifications over SMTP
type Service struct {
	dialer *mail.Dialer
	from   string
	to     string
}

// New creates a new mail service
func New(host string, port int, username, password, from, to string) *Service {
	return &Service{
		dialer: mail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
	}
}

// NotifyCriticalFeedback sends an alert email for a critical feedback item
func (s *Service) NotifyCriticalFeedback(ctx context.Context, feedback *model.Feedback) error {
	if feedback == nil {
		return goerr.New("feedback is nil")
	}

	var body strings.Builder
	fmt.Fprintf(&body, "A critical feedback was received at %s.\n\n",
		feedback.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Fprintf(&body, "Score: %d/%d\n", feedback.Score, model.MaxScore)
	fmt.Fprintf(&body, "Description:\n%s\n\n", feedback.Description)
	fmt.Fprintf(&body, "Feedback ID: %s\n", feedback.ID)

	subject := fmt.Sprintf("[feedpulse] Critical feedback (score %d)", feedback.Score)
	return s.send(subject, body.String())
}

// NotifyWeeklyReport sends the summary email of a generated weekly report
func (s *Service) NotifyWeeklyReport(ctx context.Context, report *model.WeeklyReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Weekly feedback report %s - %s\n\n",
		report.WindowStart.Format("2006-01-02"),
		report.WindowEnd.Format("2006-01-02"))

	if report.TotalCount == 0 {
		body.WriteString("No feedback was submitted this week.\n")
	} else {
		fmt.Fprintf(&body, "Total feedback: %d\n", report.TotalCount)
		fmt.Fprintf(&body, "Average score: %.2f\n", report.AverageScore)
		fmt.Fprintf(&body, "Highest score: %d\n", report.MaxScore)
		fmt.Fprintf(&body, "Lowest score: %d\n\n", report.MinScore)

		if len(report.CountByUrgency) > 0 {
			body.WriteString("By urgency:\n")
			for urgency, count := range report.CountByUrgency {
				fmt.Fprintf(&body, "  %s: %d\n", urgency, count)
			}
			body.WriteString("\n")
		}

		writeRanking(&body, "Top words", report.TopWords)
		writeRanking(&body, "Top phrases", report.TopPhrases)
	}

	fmt.Fprintf(&body, "Report ID: %s\n", report.ID)

	subject := fmt.Sprintf("[feedpulse] Weekly report %s", report.WindowEnd.Format("2006-01-02"))
	return s.send(subject, body.String())
}

func writeRanking(body *strings.Builder, title string, entries []model.TermCount) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(body, "%s:\n", title)
	for _, e := range entries {
		fmt.Fprintf(body, "  %s (%d)\n", e.Term, e.Count)
	}
	body.WriteString("\n")
}

func (s *Service) send(subject, body string) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", s.to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(msg); err != nil {
		return goerr.Wrap(err, "failed to send mail",
			goerr.V("to", s.to),
			goerr.V("subject", subject),
		)
	}
	return nil
}
