package pipeline

import "context"

// WeekdayFilter retains records whose parsed date falls on an allowed
// weekday. Matching is case-sensitive against English weekday names as
// returned by time.Weekday.String.
type WeekdayFilter struct {
	allowed map[string]struct{}
}

// NewWeekdayFilter creates a filter keeping only the given weekday names.
// An empty list keeps nothing. Unknown names are accepted and simply never
// match; config-driven pipelines reject them earlier, at load time.
func NewWeekdayFilter(days ...string) *WeekdayFilter {
	allowed := make(map[string]struct{}, len(days))
	for _, day := range days {
		allowed[day] = struct{}{}
	}
	return &WeekdayFilter{allowed: allowed}
}

// Name implements Processor.
func (f *WeekdayFilter) Name() string { return "weekday-filter" }

// Process drops records without a date and records whose weekday is not in
// the allowed set. Order-preserving.
func (f *WeekdayFilter) Process(ctx context.Context, records []Record) []Record {
	out := make([]Record, 0, len(records))
	for _, rec := range records {
		if !rec.HasDate() {
			continue
		}
		if _, ok := f.allowed[rec.Date.Weekday().String()]; !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}
