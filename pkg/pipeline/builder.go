package pipeline

import (
	"fmt"

	"github.com/datelinehq/dateline/pkg/config"
)

// FromConfig assembles the canonical parse, filter, format pipeline from a
// loaded configuration. Layout problems the config layer does not check
// for itself surface here, before any data flows.
func FromConfig(cfg *config.Config, opts ...Option) (*Pipeline, error) {
	parser, err := NewDateParser(cfg.InputLayout, WithSeparator(cfg.Separator))
	if err != nil {
		return nil, fmt.Errorf("input_layout: %w", err)
	}

	formatter, err := NewDateFormatter(cfg.OutputLayout, WithOutputSeparator(cfg.Separator))
	if err != nil {
		return nil, fmt.Errorf("output_layout: %w", err)
	}

	stages := []Processor{
		parser,
		NewWeekdayFilter(cfg.AllowedDays...),
		formatter,
	}

	return New(stages, opts...), nil
}
