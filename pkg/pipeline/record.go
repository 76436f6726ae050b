// Package pipeline implements the line transformation pipeline. A leading
// date is parsed out of each line and filtered by weekday; surviving lines
// are rewritten with the date rendered in an output layout.
package pipeline

import "time"

// Record is a single line moving through the pipeline.
type Record struct {
	// Text is the current textual form of the line. The parser keeps the
	// original line here; the formatter replaces it with the rendered line.
	Text string

	// Date is the calendar date parsed from the line. The zero time means
	// no date is attached; stages treat such records as invalid and drop
	// them. A line whose date token genuinely reads 0001-01-01 is
	// indistinguishable from "no date" and is dropped as well.
	Date time.Time

	// Rest is the portion of the original line after the date token and
	// separator. Empty for date-only lines.
	Rest string
}

// HasDate reports whether the record carries a parsed date.
func (r Record) HasDate() bool {
	return !r.Date.IsZero()
}

// WrapLines converts raw input lines into records with no parsed date,
// preserving order.
func WrapLines(lines []string) []Record {
	records := make([]Record, len(lines))
	for i, line := range lines {
		records[i] = Record{Text: line}
	}
	return records
}

// UnwrapRecords returns the textual form of each record, preserving order.
func UnwrapRecords(records []Record) []string {
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.Text
	}
	return lines
}
