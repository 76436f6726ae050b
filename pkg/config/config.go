package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. File values are layered
// over DefaultConfig, then environment overrides are applied.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors. Deeper layout checks (full
// calendar date, strftime rejection) happen when the pipeline is built
// from the config.
func Validate(cfg *Config) error {
	if cfg.InputLayout == "" {
		return errors.New("input_layout: a date layout is required")
	}

	if cfg.OutputLayout == "" {
		return errors.New("output_layout: a date layout is required")
	}

	if cfg.Separator == "" {
		return errors.New("separator: must not be empty")
	}

	if err := validateAllowedDays(cfg.AllowedDays); err != nil {
		return fmt.Errorf("allowed_days: %w", err)
	}

	if err := validateLogLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	return nil
}

func validateAllowedDays(days []string) error {
	for _, day := range days {
		if !isWeekdayName(day) {
			return fmt.Errorf("unknown weekday %q (want one of %s)", day, strings.Join(WeekdayNames(), ", "))
		}
	}
	return nil
}

func isWeekdayName(name string) bool {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if day.String() == name {
			return true
		}
	}
	return false
}

func validateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	default:
		return fmt.Errorf("invalid level %q (must be debug, info, warn, or error)", level)
	}
}
