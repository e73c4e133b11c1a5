package analytics_test

import (
	"testing"

	"github.com/feedpulse/feedpulse/pkg/analytics"
	"github.com/m-mizutani/gt"
)

func TestTokenize(t *testing.T) {
	tok := analytics.NewTokenizer([]string{"e", "de", "o"}, 3)

	t.Run("empty input yields empty sequence", func(t *testing.T) {
		gt.A(t, tok.Tokenize("")).Length(0)
		gt.A(t, tok.Tokenize("   ")).Length(0)
		gt.A(t, tok.Tokenize("!!! ... ???")).Length(0)
	})

	t.Run("punctuation is stripped and tokens lowercased", func(t *testing.T) {
		tokens := tok.Tokenize("Ótimo atendimento, voltarei!")
		gt.Equal(t, []string{"ótimo", "atendimento", "voltarei"}, tokens)
	})

	t.Run("stop words and short tokens are retained at this stage", func(t *testing.T) {
		tokens := tok.Tokenize("o atendimento de hoje")
		gt.Equal(t, []string{"o", "atendimento", "de", "hoje"}, tokens)
	})

	t.Run("digits and symbols become separators", func(t *testing.T) {
		tokens := tok.Tokenize("nota10 demais#sim")
		gt.Equal(t, []string{"nota", "demais", "sim"}, tokens)
	})
}

func TestWords(t *testing.T) {
	tok := analytics.NewTokenizer([]string{"e", "de", "não", "muito"}, 3)

	t.Run("drops short tokens and stop words", func(t *testing.T) {
		words := tok.Words("Produto bom e barato, não é de graça")
		gt.Equal(t, []string{"produto", "bom", "barato", "graça"}, words)
	})

	t.Run("minimum length counts runes, not bytes", func(t *testing.T) {
		// "até" is 3 runes but 4 bytes
		words := tok.Words("até amanhã")
		gt.Equal(t, []string{"até", "amanhã"}, words)
	})

	t.Run("order preserved and duplicates retained", func(t *testing.T) {
		words := tok.Words("bom bom ruim bom")
		gt.Equal(t, []string{"bom", "bom", "ruim", "bom"}, words)
	})

	t.Run("empty input yields empty sequence", func(t *testing.T) {
		gt.A(t, tok.Words("")).Length(0)
	})
}

func TestIsStopWord(t *testing.T) {
	tok := analytics.NewTokenizer([]string{"De", "E"}, 3)

	// Stop words are matched case-insensitively
	gt.True(t, tok.IsStopWord("de"))
	gt.True(t, tok.IsStopWord("e"))
	gt.False(t, tok.IsStopWord("bom"))
}
