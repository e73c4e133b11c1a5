package model_test

import (
	"testing"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestDefaultAnalyticsConfig(t *testing.T) {
	cfg := model.DefaultAnalyticsConfig()

	gt.NoError(t, cfg.Validate())
	gt.Equal(t, cfg.CriticalThreshold, model.DefaultCriticalThreshold)
	gt.Equal(t, cfg.MinWordLength, model.DefaultMinWordLength)
	gt.Equal(t, cfg.TopK, model.DefaultTopK)
	gt.Equal(t, cfg.MinPhraseCount, model.DefaultMinPhraseCount)
	gt.A(t, cfg.StopWords).Longer(0).Has("muito").Has("não")
}

func TestAnalyticsConfigValidate(t *testing.T) {
	cases := map[string]func(cfg *model.AnalyticsConfig){
		"threshold below score range": func(cfg *model.AnalyticsConfig) { cfg.CriticalThreshold = -1 },
		"threshold above score range": func(cfg *model.AnalyticsConfig) { cfg.CriticalThreshold = 11 },
		"zero min word length":        func(cfg *model.AnalyticsConfig) { cfg.MinWordLength = 0 },
		"zero top-K":                  func(cfg *model.AnalyticsConfig) { cfg.TopK = 0 },
		"zero min phrase count":       func(cfg *model.AnalyticsConfig) { cfg.MinPhraseCount = 0 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := model.DefaultAnalyticsConfig()
			mutate(cfg)
			gt.Error(t, cfg.Validate())
		})
	}
}
