package slack

import (
	"fmt"
	"strings"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/feedpulse/feedpulse/pkg/domain/types"
	"github.com/slack-go/slack"
)

// urgencyEmoji returns the emoji used for an urgency tag
func urgencyEmoji(urgency types.Urgency) string {
	switch urgency {
	case types.UrgencyCritical:
		return "🚨"
	case types.UrgencyHigh:
		return "⚠️"
	default:
		return "ℹ️"
	}
}

// buildCriticalFeedbackBlocks builds the Block Kit message for a critical
// feedback alert
func buildCriticalFeedbackBlocks(feedback *model.Feedback) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType,
			fmt.Sprintf("%s Critical feedback received", urgencyEmoji(feedback.Urgency)),
			true, false),
	)

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Score:*\n%d / %d", feedback.Score, model.MaxScore), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Received:*\n%s", feedback.CreatedAt.Format("2006-01-02 15:04")), false, false),
	}

	description := slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Description:*\n>%s", feedback.Description), false, false),
		nil, nil,
	)

	footer := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Feedback ID: `%s`", feedback.ID), false, false),
	)

	return []slack.Block{
		header,
		slack.NewSectionBlock(nil, fields, nil),
		description,
		footer,
	}
}

// buildWeeklyReportBlocks builds the Block Kit summary for a weekly report
func buildWeeklyReportBlocks(report *model.WeeklyReport) []slack.Block {
	header := slack.NewHeaderBlock(
		slack.NewTextBlockObject(slack.PlainTextType, "📊 Weekly feedback report", true, false),
	)

	window := slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("%s - %s",
				report.WindowStart.Format("2006-01-02"),
				report.WindowEnd.Format("2006-01-02")),
			false, false),
	)

	if report.TotalCount == 0 {
		empty := slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType, "No feedback was submitted this week.", false, false),
			nil, nil,
		)
		return []slack.Block{header, window, empty}
	}

	fields := []*slack.TextBlockObject{
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Total:*\n%d", report.TotalCount), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Average score:*\n%.2f", report.AverageScore), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*Highest / lowest:*\n%d / %d", report.MaxScore, report.MinScore), false, false),
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("*By urgency:*\n%s", formatUrgencyCounts(report.CountByUrgency)), false, false),
	}

	blocks := []slack.Block{
		header,
		window,
		slack.NewSectionBlock(nil, fields, nil),
	}

	if len(report.TopWords) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Top words:*\n%s", formatRanking(report.TopWords)), false, false),
			nil, nil,
		))
	}
	if len(report.TopPhrases) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(
			slack.NewTextBlockObject(slack.MarkdownType,
				fmt.Sprintf("*Top phrases:*\n%s", formatRanking(report.TopPhrases)), false, false),
			nil, nil,
		))
	}

	blocks = append(blocks, slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType,
			fmt.Sprintf("Report ID: `%s`", report.ID), false, false),
	))

	return blocks
}

// formatUrgencyCounts renders urgency counts in a fixed tag order
func formatUrgencyCounts(counts map[string]int64) string {
	order := []types.Urgency{types.UrgencyCritical, types.UrgencyHigh, types.UrgencyNormal}

	var parts []string
	for _, urgency := range order {
		count, ok := counts[urgency.String()]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s: %d", urgencyEmoji(urgency), urgency, count))
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, "\n")
}

// formatRanking renders ranking entries as a markdown list
func formatRanking(entries []model.TermCount) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("• %s (%d)", e.Term, e.Count))
	}
	return strings.Join(lines, "\n")
}
