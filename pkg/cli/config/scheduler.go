package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Scheduler holds the weekly report schedule configuration
type Scheduler struct {
	Weekday  string
	Hour     int
	Disabled bool
}

// Flags returns CLI flags for Scheduler configuration
func (s *Scheduler) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "report-weekday",
			Usage:       "Weekday the weekly report is generated on",
			Category:    "Scheduler",
			Value:       "Monday",
			Sources:     cli.EnvVars("FEEDPULSE_REPORT_WEEKDAY"),
			Destination: &s.Weekday,
		},
		&cli.IntFlag{
			Name:        "report-hour",
			Usage:       "Hour of day (0-23) the weekly report is generated at",
			Category:    "Scheduler",
			Value:       9,
			Sources:     cli.EnvVars("FEEDPULSE_REPORT_HOUR"),
			Destination: &s.Hour,
		},
		&cli.BoolFlag{
			Name:        "no-report-schedule",
			Usage:       "Disable the scheduled weekly report generation",
			Category:    "Scheduler",
			Sources:     cli.EnvVars("FEEDPULSE_NO_REPORT_SCHEDULE"),
			Destination: &s.Disabled,
		},
	}
}

// Validate validates the scheduler configuration
func (s *Scheduler) Validate() error {
	if _, err := s.weekday(); err != nil {
		return err
	}
	if s.Hour < 0 || s.Hour > 23 {
		return goerr.New("report hour must be between 0 and 23",
			goerr.V("hour", s.Hour))
	}
	return nil
}

// Next returns the next scheduled run strictly after now
func (s *Scheduler) Next(now time.Time) (time.Time, error) {
	weekday, err := s.weekday()
	if err != nil {
		return time.Time{}, err
	}

	run := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, 0, 0, 0, now.Location())
	days := (int(weekday) - int(now.Weekday()) + 7) % 7
	run = run.AddDate(0, 0, days)
	if !run.After(now) {
		run = run.AddDate(0, 0, 7)
	}
	return run, nil
}

func (s *Scheduler) weekday() (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s.Weekday) {
			return d, nil
		}
	}
	return 0, goerr.New("invalid report weekday", goerr.V("weekday", s.Weekday))
}

// LogValue returns structured log value
func (s Scheduler) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("weekday", s.Weekday),
		slog.Int("hour", s.Hour),
		slog.Bool("disabled", s.Disabled),
	)
}
