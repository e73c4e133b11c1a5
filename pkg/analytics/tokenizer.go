package analytics

import (
	"strings"
	"unicode"
)

// Tokenizer normalizes raw feedback text into lowercase word tokens
type Tokenizer struct {
	stopWords  map[string]struct{}
	minWordLen int
}

// NewTokenizer creates a Tokenizer with the given stop-word list and
// minimum word length
func NewTokenizer(stopWords []string, minWordLen int) *Tokenizer {
	set := make(map[string]struct{}, len(stopWords))
	for _, w := range stopWords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Tokenizer{
		stopWords:  set,
		minWordLen: minWordLen,
	}
}

// Tokenize splits text into an ordered sequence of lowercase tokens.
// Every rune that is not a Unicode letter becomes a space, whitespace
// runs collapse, and the remainder is split on spaces. Stop words and
// short tokens are retained at this stage. Empty input yields an empty
// sequence, not an error.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.Fields(b.String())
}

// Words tokenizes text and drops tokens shorter than the minimum word
// length and tokens in the stop-word set. Order is preserved and
// duplicates are retained; deduplication happens in the ranking stage.
func (t *Tokenizer) Words(text string) []string {
	tokens := t.Tokenize(text)

	words := tokens[:0:0]
	for _, token := range tokens {
		if len([]rune(token)) < t.minWordLen {
			continue
		}
		if t.IsStopWord(token) {
			continue
		}
		words = append(words, token)
	}
	return words
}

// IsStopWord reports whether the token is in the stop-word set
func (t *Tokenizer) IsStopWord(token string) bool {
	_, ok := t.stopWords[token]
	return ok
}
