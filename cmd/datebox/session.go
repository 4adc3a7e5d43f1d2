package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datebox/internal/config"
	"github.com/alexisbeaulieu97/datebox/internal/datebox"
	"github.com/alexisbeaulieu97/datebox/internal/logger"
	"github.com/alexisbeaulieu97/datebox/internal/validation"
)

// session bundles what every command derives from the root flags.
type session struct {
	cfg    *config.Config
	log    *logger.Logger
	zone   *time.Location
	now    func() time.Time
	report []validation.Result
}

func newSession(cmd *cobra.Command, operation string, flags *rootFlags) (*session, error) {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return nil, newCommandError(operation, "creating logger", err, "This is unexpected; please report it.")
	}

	cfg := config.Default()
	if strings.TrimSpace(flags.configPath) != "" {
		cfg, err = config.ParseConfig(flags.configPath)
		if err != nil {
			return nil, newCommandError(operation, "loading options", err, "Check the options document against the documented schema.")
		}
	}

	for _, override := range flags.overrides {
		key, value, ok := strings.Cut(override, "=")
		if !ok {
			return nil, newCommandError(operation, "reading --set", fmt.Errorf("%q is not key=value", override), "Use --set name=value, e.g. --set type=time.")
		}
		if err := cfg.Override(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return nil, newCommandError(operation, fmt.Sprintf("applying --set %s", key), err, "Check the option name and value.")
		}
	}

	zone := time.Local
	if flags.location != "" {
		zone, err = time.LoadLocation(flags.location)
		if err != nil {
			return nil, newCommandError(operation, "loading time zone", err, "Use an IANA name such as Europe/Paris or UTC.")
		}
	}

	now := time.Now
	if flags.now != "" {
		fixed, err := time.Parse(time.RFC3339, flags.now)
		if err != nil {
			return nil, newCommandError(operation, "reading --now", err, "Use RFC 3339, e.g. 2024-03-15T09:30:00Z.")
		}
		now = func() time.Time { return fixed }
	}

	return &session{cfg: cfg, log: log, zone: zone, now: now}, nil
}

// boxConfig describes the box the options document asks for. Rules from
// the document become the custom validator.
func (s *session) boxConfig() datebox.Config {
	cfg := datebox.Config{
		Options:             s.cfg.ToOptions(),
		Device:              s.cfg.BoxDevice(),
		ForceISODateParsing: s.cfg.ForceISODateParsing,
		Logger:              s.log,
		Location:            s.zone,
		Now:                 s.now,
	}
	if len(s.cfg.Rules) > 0 {
		cfg.Validator = validation.Custom(validation.ParseRules(s.cfg.Rules), s.now, func(results []validation.Result, _ error) {
			s.report = results
		})
	}
	return cfg
}

func (s *session) newBox() (*datebox.DateBox, error) {
	cfg := s.boxConfig()
	cfg.Host = datebox.NopHost{Width: s.cfg.ScreenWidth()}
	return datebox.New(cfg)
}

// failedRules lists the messages of the rules that failed in the last run.
func (s *session) failedRules() []string {
	var out []string
	for _, r := range s.report {
		if !r.Passed {
			out = append(out, r.Message)
		}
	}
	return out
}
