// Package config provides configuration loading and validation for dateline.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// InputLayout is the Go time layout of the leading date token on each
	// input line. See https://pkg.go.dev/time#pkg-constants for format.
	InputLayout string `yaml:"input_layout"`

	// OutputLayout is the Go time layout used to render dates in output
	// lines.
	OutputLayout string `yaml:"output_layout"`

	// Separator divides the date token from the rest of the line, on both
	// the input and the output side.
	Separator string `yaml:"separator"`

	// AllowedDays lists the weekday names to keep. An explicit empty list
	// keeps nothing; when the key is absent, every weekday passes.
	AllowedDays []string `yaml:"allowed_days"`

	// Sources are the files to read lines from. Glob patterns are
	// expanded; "-" means stdin. Command-line arguments take precedence.
	Sources []string `yaml:"sources,omitempty"`

	// LogLevel controls diagnostic logging: debug, info, warn, or error.
	LogLevel string `yaml:"log_level,omitempty"`
}
