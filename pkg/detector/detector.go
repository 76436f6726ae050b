// Package detector identifies the date layout of the leading token on
// sample input lines.
package detector

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strings"
	"time"
)

// Result holds the outcome of analyzing sample lines.
type Result struct {
	Matches       []LayoutMatch // Layouts that matched, sorted by confidence descending
	SampledLines  int           // Number of lines sampled
	ParsedLines   int           // Number of lines matching the best layout
	AmbiguityNote string        // Warning about day/month ordering if applicable
}

// LayoutMatch represents a layout that matched with its confidence score.
type LayoutMatch struct {
	Layout     *DateLayout
	Confidence float64   // 0.0 to 1.0 (share of sampled lines that matched)
	MatchCount int       // Number of lines that matched
	SampleLine string    // Example line that matched
	ParsedDate time.Time // Date parsed from the sample line's token
}

// Detector matches the leading date token of lines against known layouts.
// The token is everything before the first separator occurrence, or the
// whole line when the separator is absent.
type Detector struct {
	layouts    []*DateLayout
	sampleSize int
	separator  string
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// WithSeparator sets the token separator (default ": ").
func WithSeparator(sep string) Option {
	return func(d *Detector) {
		if sep != "" {
			d.separator = sep
		}
	}
}

// New creates a Detector with the built-in layouts.
func New(opts ...Option) *Detector {
	d := &Detector{
		layouts:    DefaultLayouts(),
		sampleSize: 100,
		separator:  ": ",
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples a file and returns detected layouts.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*Result, error) {
	lines, err := d.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of lines.
func (d *Detector) DetectFromLines(lines []string) *Result {
	result := &Result{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type layoutStats struct {
		layout     *DateLayout
		rank       int
		matchCount int
		sampleLine string
		parsedDate time.Time
	}

	stats := make(map[string]*layoutStats)

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		token, _, _ := strings.Cut(line, d.separator)

		for rank, layout := range d.layouts {
			if !layout.Pattern.MatchString(token) {
				continue
			}

			// The regex gates shape only; the layout must also accept the
			// token, so 99/99/2024 never counts as a match.
			date, err := time.Parse(layout.Layout, token)
			if err != nil || date.IsZero() {
				continue
			}

			if stats[layout.Name] == nil {
				stats[layout.Name] = &layoutStats{
					layout:     layout,
					rank:       rank,
					sampleLine: line,
					parsedDate: date,
				}
			}
			stats[layout.Name].matchCount++
		}
	}

	ranks := make(map[string]int, len(stats))
	for _, s := range stats {
		ranks[s.layout.Name] = s.rank
		result.Matches = append(result.Matches, LayoutMatch{
			Layout:     s.layout,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
			ParsedDate: s.parsedDate,
		})
	}

	// Sort by confidence descending; ties go to the layout declared first,
	// which keeps the US/European coin flip deterministic.
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return ranks[result.Matches[i].Layout.Name] < ranks[result.Matches[j].Layout.Name]
	})

	if len(result.Matches) > 0 {
		result.ParsedLines = result.Matches[0].MatchCount
	}

	if len(result.Matches) > 0 && result.Matches[0].Layout.Ambiguous {
		result.AmbiguityNote = "Day and month order cannot be determined from the samples (MM/DD vs DD/MM). " +
			"Verify the layout matches your data. " +
			"For European order (DD/MM/YYYY), use layout: \"02/01/2006\""
	}

	return result
}

// sampleFile reads up to sampleSize lines from a file.
// Uses simple head sampling for efficiency.
func (d *Detector) sampleFile(_ context.Context, path string) ([]string, error) {
	// #nosec G304 - path is provided by user via CLI
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() && len(lines) < d.sampleSize {
		line := scanner.Text()
		// Skip empty lines and comments
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *Result) BestMatch() *LayoutMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one layout matched.
func (r *Result) HasMatch() bool {
	return len(r.Matches) > 0
}
