package config

import (
	"log/slog"
	"os"

	"github.com/feedpulse/feedpulse/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Analytics holds the analytics configuration source
type Analytics struct {
	ConfigPath string
}

// Flags returns CLI flags for Analytics configuration
func (a *Analytics) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "analytics-config",
			Usage:       "Path to YAML file overriding analytics policy (stop words, thresholds, top-K)",
			Category:    "Analytics",
			Sources:     cli.EnvVars("FEEDPULSE_ANALYTICS_CONFIG"),
			Destination: &a.ConfigPath,
		},
	}
}

// Configure returns the analytics configuration. Fields missing from the
// YAML file keep their built-in defaults; without a file the defaults are
// used as-is.
func (a *Analytics) Configure() (*model.AnalyticsConfig, error) {
	cfg := model.DefaultAnalyticsConfig()
	if a.ConfigPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(a.ConfigPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, goerr.Wrap(err, "analytics configuration file not found",
				goerr.V("path", a.ConfigPath))
		}
		return nil, goerr.Wrap(err, "failed to read analytics configuration",
			goerr.V("path", a.ConfigPath))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse analytics configuration",
			goerr.V("path", a.ConfigPath))
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid analytics configuration",
			goerr.V("path", a.ConfigPath))
	}

	return cfg, nil
}

// LogValue returns structured log value
func (a Analytics) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("configPath", a.ConfigPath),
	)
}
