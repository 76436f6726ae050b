package pipeline

import (
	"context"
	"errors"
)

// DateFormatter rewrites each record's text as the parsed date rendered in
// the output layout, followed by the separator and the unchanged remainder
// of the original line. A record with no remainder renders as the formatted
// date alone, with no trailing separator.
type DateFormatter struct {
	layout    string
	separator string
}

// FormatterOption configures a DateFormatter.
type FormatterOption func(*DateFormatter)

// WithOutputSeparator overrides the separator placed between the rendered
// date and the remainder of the line.
func WithOutputSeparator(sep string) FormatterOption {
	return func(f *DateFormatter) {
		f.separator = sep
	}
}

// NewDateFormatter creates a formatter rendering dates with the given Go
// reference-time layout. Empty and strftime-style layouts are rejected.
// Output layouts need not round-trip: rendering "Monday, January 02" is
// fine even though no year survives it.
func NewDateFormatter(layout string, opts ...FormatterOption) (*DateFormatter, error) {
	if err := checkLayout(layout); err != nil {
		return nil, err
	}

	f := &DateFormatter{
		layout:    layout,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.separator == "" {
		return nil, errors.New("separator is empty")
	}

	return f, nil
}

// Name implements Processor.
func (f *DateFormatter) Name() string { return "date-formatter" }

// Process renders each record's date and splices it in front of the
// remainder. Records without a date are dropped; valid records map 1:1.
func (f *DateFormatter) Process(ctx context.Context, records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if !rec.HasDate() {
			continue
		}

		text := rec.Date.Format(f.layout)
		if rec.Rest != "" {
			text += f.separator + rec.Rest
		}

		out = append(out, Record{Text: text, Date: rec.Date, Rest: rec.Rest})
	}
	return out
}
