package model

import (
	"github.com/m-mizutani/goerr/v2"
)

// Default analytics policy values. These mirror the ranking and
// classification rules the report is built on and are overridable
// through the analytics configuration file.
const (
	DefaultCriticalThreshold = 3
	DefaultMinWordLength     = 3
	DefaultTopK              = 10
	DefaultMinPhraseCount    = 2
)

// defaultStopWords is the fixed Portuguese stop-word list applied to
// incoming feedback text.
var defaultStopWords = []string{
	"a", "o", "e", "de", "do", "da", "em", "um", "uma", "para", "com", "não",
	"é", "que", "se", "na", "por", "mais", "as", "os", "como", "mas", "foi",
	"ao", "ele", "das", "tem", "à", "seu", "sua", "ou", "ser", "quando",
	"muito", "há", "nos", "já", "está", "eu", "também", "só", "pelo", "pela",
	"até", "isso", "ela", "entre", "era", "depois", "sem", "mesmo", "aos",
	"ter", "seus", "suas", "numa", "pelos", "pelas", "num", "nem",
	"meu", "às", "minha", "têm",
}

// AnalyticsConfig holds the text analytics policy knobs
type AnalyticsConfig struct {
	CriticalThreshold int      `yaml:"critical_threshold"`
	MinWordLength     int      `yaml:"min_word_length"`
	TopK              int      `yaml:"top_k"`
	MinPhraseCount    int      `yaml:"min_phrase_count"`
	StopWords         []string `yaml:"stop_words"`
}

// DefaultAnalyticsConfig returns the built-in analytics configuration
func DefaultAnalyticsConfig() *AnalyticsConfig {
	return &AnalyticsConfig{
		CriticalThreshold: DefaultCriticalThreshold,
		MinWordLength:     DefaultMinWordLength,
		TopK:              DefaultTopK,
		MinPhraseCount:    DefaultMinPhraseCount,
		StopWords:         defaultStopWords,
	}
}

// Validate validates the analytics configuration
func (c *AnalyticsConfig) Validate() error {
	if c.CriticalThreshold < MinScore || c.CriticalThreshold > MaxScore {
		return goerr.New("critical threshold must be within the score range",
			goerr.V("threshold", c.CriticalThreshold))
	}
	if c.MinWordLength < 1 {
		return goerr.New("minimum word length must be positive",
			goerr.V("minWordLength", c.MinWordLength))
	}
	if c.TopK < 1 {
		return goerr.New("top-K must be positive",
			goerr.V("topK", c.TopK))
	}
	if c.MinPhraseCount < 1 {
		return goerr.New("minimum phrase count must be positive",
			goerr.V("minPhraseCount", c.MinPhraseCount))
	}
	return nil
}
