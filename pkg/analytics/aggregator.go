package analytics

import (
	"strings"
	"time"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
)

// dayLabelFormat is the calendar-day key of the per-day counts
const dayLabelFormat = "2006-01-02"

// minWordCount is the minimum occurrences for a word to be ranked
const minWordCount = 1

// Aggregator computes the statistical and lexical summary of a batch of
// feedback items. It holds no mutable state and performs no I/O, so a
// single instance may be shared by concurrent callers.
type Aggregator struct {
	tokenizer      *Tokenizer
	topK           int
	minPhraseCount int
}

// NewAggregator creates an Aggregator from the analytics configuration.
// A nil config falls back to the built-in defaults.
func NewAggregator(cfg *model.AnalyticsConfig) *Aggregator {
	if cfg == nil {
		cfg = model.DefaultAnalyticsConfig()
	}
	return &Aggregator{
		tokenizer:      NewTokenizer(cfg.StopWords, cfg.MinWordLength),
		topK:           cfg.TopK,
		minPhraseCount: cfg.MinPhraseCount,
	}
}

// Aggregate builds the weekly report for items collected in the half-open
// window [windowStart, windowEnd). An empty batch yields a zeroed report
// with empty rankings, never an error.
func (a *Aggregator) Aggregate(items []*model.Feedback, windowStart, windowEnd time.Time) *model.WeeklyReport {
	report := model.NewWeeklyReport(windowStart, windowEnd)
	if len(items) == 0 {
		return report
	}

	scoreSum := 0
	maxScore := items[0].Score
	minScore := items[0].Score
	var words, phrases []string

	for _, item := range items {
		scoreSum += item.Score
		if item.Score > maxScore {
			maxScore = item.Score
		}
		if item.Score < minScore {
			minScore = item.Score
		}

		report.CountByUrgency[item.Urgency.String()]++
		report.CountByDay[item.CreatedAt.Format(dayLabelFormat)]++

		if strings.TrimSpace(item.Description) == "" {
			continue
		}
		words = append(words, a.tokenizer.Words(item.Description)...)
		phrases = append(phrases, a.tokenizer.ExtractPhrases(a.tokenizer.Tokenize(item.Description))...)
	}

	report.TotalCount = int64(len(items))
	report.AverageScore = float64(scoreSum) / float64(len(items))
	report.MaxScore = maxScore
	report.MinScore = minScore
	report.TopWords = Rank(words, minWordCount, a.topK)
	report.TopPhrases = Rank(phrases, a.minPhraseCount, a.topK)

	return report
}
