package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultInputLayout  = "2006-01-02"
	DefaultOutputLayout = "Monday, January 02"
	DefaultSeparator    = ": "
	DefaultLogLevel     = "info"
)

// Environment variable names.
const (
	EnvInputLayout  = "DATELINE_INPUT_LAYOUT"
	EnvOutputLayout = "DATELINE_OUTPUT_LAYOUT"
	EnvLogLevel     = "DATELINE_LOG_LEVEL"
)

// DefaultConfig returns a configuration with sensible defaults: ISO input
// dates, a long weekday-and-month output, and every weekday allowed, so an
// unconfigured run reformats without filtering.
func DefaultConfig() *Config {
	return &Config{
		InputLayout:  DefaultInputLayout,
		OutputLayout: DefaultOutputLayout,
		Separator:    DefaultSeparator,
		AllowedDays:  WeekdayNames(),
		LogLevel:     DefaultLogLevel,
	}
}

// WeekdayNames returns the seven English weekday names in calendar order,
// starting from Sunday.
func WeekdayNames() []string {
	names := make([]string, 0, 7)
	for day := time.Sunday; day <= time.Saturday; day++ {
		names = append(names, day.String())
	}
	return names
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if layout := os.Getenv(EnvInputLayout); layout != "" {
		c.InputLayout = layout
	}
	if layout := os.Getenv(EnvOutputLayout); layout != "" {
		c.OutputLayout = layout
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}
}
