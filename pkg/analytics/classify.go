package analytics

import (
	"github.com/feedpulse/feedpulse/pkg/domain/types"
)

// highScoreCeiling is the highest score still tagged as high urgency
const highScoreCeiling = 6

// ClassifyUrgency maps a feedback score to its urgency tag. Scores at or
// below the critical threshold are critical, scores up to 6 are high, and
// everything above is normal. The threshold is injected by the caller.
func ClassifyUrgency(score, threshold int) types.Urgency {
	switch {
	case score <= threshold:
		return types.UrgencyCritical
	case score <= highScoreCeiling:
		return types.UrgencyHigh
	default:
		return types.UrgencyNormal
	}
}
