package analytics

import (
	"sort"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
)

// Rank counts occurrences of items and returns the topK entries with at
// least minCount occurrences, ordered by count descending. Entries with
// equal counts keep the order in which they were first seen in the input,
// so the result is deterministic for a fixed input sequence.
func Rank(items []string, minCount, topK int) []model.TermCount {
	counts := make(map[string]int64, len(items))
	var firstSeen []string
	for _, item := range items {
		if _, ok := counts[item]; !ok {
			firstSeen = append(firstSeen, item)
		}
		counts[item]++
	}

	entries := make([]model.TermCount, 0, len(firstSeen))
	for _, term := range firstSeen {
		if counts[term] >= int64(minCount) {
			entries = append(entries, model.TermCount{Term: term, Count: counts[term]})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > topK {
		entries = entries[:topK]
	}
	return entries
}
