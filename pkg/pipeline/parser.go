package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"
)

// DateParser extracts a leading date from each record's text.
//
// A line is expected to start with a date token, separated from the rest
// of the line by the separator (default ": "). Lines without a parseable
// date are dropped, never reported: per-line tolerance is the contract,
// and only construction can fail.
type DateParser struct {
	layout    string
	separator string
}

// ParserOption configures a DateParser.
type ParserOption func(*DateParser)

// WithSeparator overrides the token separator.
func WithSeparator(sep string) ParserOption {
	return func(p *DateParser) {
		p.separator = sep
	}
}

// NewDateParser creates a parser for lines whose leading date token matches
// the given Go reference-time layout. The layout must express a full
// calendar date; empty and strftime-style layouts are rejected.
func NewDateParser(layout string, opts ...ParserOption) (*DateParser, error) {
	if err := checkParseLayout(layout); err != nil {
		return nil, err
	}

	p := &DateParser{
		layout:    layout,
		separator: DefaultSeparator,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.separator == "" {
		return nil, errors.New("separator is empty")
	}

	return p, nil
}

// Name implements Processor.
func (p *DateParser) Name() string { return "date-parser" }

// Process parses the leading date of each record's text. Records whose
// text carries no parseable date are dropped; survivors keep their input
// order. Parsing always starts from the text, so re-parsing an already
// parsed record behaves like parsing the raw line.
func (p *DateParser) Process(ctx context.Context, records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		parsed, ok := p.parse(rec.Text)
		if !ok {
			continue
		}
		out = append(out, parsed)
	}
	return out
}

// parse splits the leading token off the line and parses it with the
// configured layout. The token must be consumed exactly; trailing text
// inside the token fails the parse. Content after the separator is not
// validated at all.
func (p *DateParser) parse(line string) (Record, bool) {
	token, rest, _ := strings.Cut(line, p.separator)

	date, err := time.Parse(p.layout, token)
	if err != nil || date.IsZero() {
		return Record{}, false
	}

	return Record{Text: line, Date: date, Rest: rest}, true
}
