package output

import (
	"context"
	"fmt"
	"io"
	"time"
)

// TextFormatter writes result lines as plain text. Accounting, when
// requested, goes out as "#"-prefixed lines so stdout stays pipeable.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "dateline: %d lines in, %d out, %d dropped\n",
		report.Summary.Input,
		report.Summary.Emitted,
		report.Summary.Dropped)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	for _, line := range report.Lines {
		fmt.Fprintln(w, line)
	}

	if !f.opts.Verbose {
		return nil
	}

	fmt.Fprintf(w, "# %d lines in, %d out, %d dropped\n",
		report.Summary.Input,
		report.Summary.Emitted,
		report.Summary.Dropped)

	for _, stage := range report.Summary.Stages {
		fmt.Fprintf(w, "# %s: %d in, %d out\n", stage.Stage, stage.In, stage.Out)
	}

	fmt.Fprintf(w, "# duration: %s\n", report.Metadata.Duration.Round(time.Millisecond))

	return nil
}
