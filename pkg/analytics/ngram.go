package analytics

// ExtractPhrases derives 2-word and 3-word phrase candidates from a raw
// token sequence produced by Tokenize. Phrase construction tests each
// component word against the stop-word set independently:
//   - a bigram is emitted only when neither word is a stop word
//   - a trigram is emitted unless all three words are stop words
//
// The asymmetry keeps connector-heavy bigrams out while still allowing
// trigrams that contain a single connector word (e.g. "não gostou do").
// No deduplication happens at this stage.
func (t *Tokenizer) ExtractPhrases(tokens []string) []string {
	if len(tokens) < 2 {
		return nil
	}

	phrases := make([]string, 0, 2*len(tokens))

	for i := 0; i+1 < len(tokens); i++ {
		if t.IsStopWord(tokens[i]) || t.IsStopWord(tokens[i+1]) {
			continue
		}
		phrases = append(phrases, tokens[i]+" "+tokens[i+1])
	}

	for i := 0; i+2 < len(tokens); i++ {
		if t.IsStopWord(tokens[i]) && t.IsStopWord(tokens[i+1]) && t.IsStopWord(tokens[i+2]) {
			continue
		}
		phrases = append(phrases, tokens[i]+" "+tokens[i+1]+" "+tokens[i+2])
	}

	return phrases
}
