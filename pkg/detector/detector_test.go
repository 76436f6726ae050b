package detector

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDetector_DetectFromLines_ISODate(t *testing.T) {
	lines := []string{
		"2024-10-14: System backup completed",
		"2024-10-15: Code review meeting",
		"2024-10-16: Database maintenance",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}

	best := result.BestMatch()
	if best.Layout.Name != "ISO date" {
		t.Errorf("Expected ISO date, got %s", best.Layout.Name)
	}
	if best.Confidence != 1.0 {
		t.Errorf("Expected 100%% confidence, got %.1f%%", best.Confidence*100)
	}
	if best.MatchCount != 3 {
		t.Errorf("Expected 3 matches, got %d", best.MatchCount)
	}

	want := time.Date(2024, 10, 14, 0, 0, 0, 0, time.UTC)
	if !best.ParsedDate.Equal(want) {
		t.Errorf("ParsedDate = %v, want %v", best.ParsedDate, want)
	}
}

func TestDetector_DetectFromLines_ISODatetime(t *testing.T) {
	lines := []string{
		"2024-10-14T09:00:00: Morning standup",
		"2024-10-14T13:30:00: Deploy window opens",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}
	if result.BestMatch().Layout.Name != "ISO datetime" {
		t.Errorf("Expected ISO datetime, got %s", result.BestMatch().Layout.Name)
	}
}

func TestDetector_DetectFromLines_CompactDate(t *testing.T) {
	lines := []string{
		"20241014: System backup completed",
		"20241015: Code review meeting",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}
	if result.BestMatch().Layout.Name != "Compact date" {
		t.Errorf("Expected Compact date, got %s", result.BestMatch().Layout.Name)
	}
}

func TestDetector_DetectFromLines_MonthName(t *testing.T) {
	lines := []string{
		"October 14, 2024: System backup completed",
		"October 16, 2024: Database maintenance",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}
	if result.BestMatch().Layout.Name != "Long month date" {
		t.Errorf("Expected Long month date, got %s", result.BestMatch().Layout.Name)
	}
}

func TestDetector_DetectFromLines_NoMatch(t *testing.T) {
	lines := []string{
		"no dates here",
		"just plain text",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if result.HasMatch() {
		t.Errorf("Expected no match, got %s", result.BestMatch().Layout.Name)
	}
	if result.SampledLines != 2 {
		t.Errorf("SampledLines = %d, want 2", result.SampledLines)
	}
	if result.BestMatch() != nil {
		t.Error("BestMatch() should be nil with no matches")
	}
}

func TestDetector_DetectFromLines_Empty(t *testing.T) {
	d := New()
	result := d.DetectFromLines(nil)

	if result.HasMatch() {
		t.Error("Expected no match for empty input")
	}
	if result.SampledLines != 0 {
		t.Errorf("SampledLines = %d, want 0", result.SampledLines)
	}
}

func TestDetector_DetectFromLines_Ambiguous(t *testing.T) {
	// Both day and month are 12 or less, so US and European order both
	// parse. The US layout is declared first and wins the tie.
	lines := []string{
		"05/04/2024: could be May 4 or April 5",
		"06/03/2024: could be June 3 or March 6",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}

	best := result.BestMatch()
	if best.Layout.Name != "US date (MM/DD/YYYY)" {
		t.Errorf("Expected US date to win the tie, got %s", best.Layout.Name)
	}
	if !best.Layout.Ambiguous {
		t.Error("Expected the slash layout to be flagged ambiguous")
	}
	if result.AmbiguityNote == "" {
		t.Error("Expected an ambiguity note for slash dates")
	}
	if len(result.Matches) != 2 {
		t.Errorf("Matches = %d, want both slash layouts", len(result.Matches))
	}
}

func TestDetector_DetectFromLines_UnambiguousSlashDate(t *testing.T) {
	// Day 14 rules out a month, so only the US order parses.
	lines := []string{"10/14/2024: definitely October 14"}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}
	if len(result.Matches) != 1 {
		t.Fatalf("Matches = %d, want 1", len(result.Matches))
	}
	if result.Matches[0].Layout.Name != "US date (MM/DD/YYYY)" {
		t.Errorf("Expected US date, got %s", result.Matches[0].Layout.Name)
	}
}

func TestDetector_DetectFromLines_RejectsImpossibleDates(t *testing.T) {
	// The shape matches the slash pattern but no calendar accepts it.
	lines := []string{"99/99/2024: not a date"}

	d := New()
	result := d.DetectFromLines(lines)

	if result.HasMatch() {
		t.Errorf("Expected no match for impossible date, got %s", result.BestMatch().Layout.Name)
	}
}

func TestDetector_DetectFromLines_MixedLayouts(t *testing.T) {
	lines := []string{
		"2024-10-14: iso",
		"2024-10-15: iso",
		"2024-10-16: iso",
		"20241017: compact",
	}

	d := New()
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}

	best := result.BestMatch()
	if best.Layout.Name != "ISO date" {
		t.Errorf("Expected ISO date as best layout, got %s", best.Layout.Name)
	}
	if best.MatchCount != 3 {
		t.Errorf("MatchCount = %d, want 3", best.MatchCount)
	}
	if result.ParsedLines != 3 {
		t.Errorf("ParsedLines = %d, want 3", result.ParsedLines)
	}
}

func TestDetector_WithSeparator(t *testing.T) {
	lines := []string{"2024-10-14 | piped event"}

	d := New(WithSeparator(" | "))
	result := d.DetectFromLines(lines)

	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}
	if result.BestMatch().Layout.Name != "ISO date" {
		t.Errorf("Expected ISO date, got %s", result.BestMatch().Layout.Name)
	}
}

func TestDetector_DetectFromFile(t *testing.T) {
	content := `# comment lines are skipped
2024-10-14: System backup completed

2024-10-15: Code review meeting
`
	path := filepath.Join(t.TempDir(), "events.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	d := New()
	result, err := d.DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}

	if result.SampledLines != 2 {
		t.Errorf("SampledLines = %d, want 2 (blank and comment lines skipped)", result.SampledLines)
	}
	if !result.HasMatch() {
		t.Fatal("Expected to detect a layout")
	}
	if result.BestMatch().Confidence != 1.0 {
		t.Errorf("Confidence = %.2f, want 1.0", result.BestMatch().Confidence)
	}
}

func TestDetector_DetectFromFile_Missing(t *testing.T) {
	d := New()
	_, err := d.DetectFromFile(context.Background(), "/nonexistent/file.txt")
	if err == nil {
		t.Error("DetectFromFile() expected error for missing file")
	}
}

func TestDetector_WithSampleSize(t *testing.T) {
	var content string
	for i := 0; i < 50; i++ {
		content += "2024-10-14: line\n"
	}
	path := filepath.Join(t.TempDir(), "big.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	d := New(WithSampleSize(10))
	result, err := d.DetectFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("DetectFromFile() error = %v", err)
	}

	if result.SampledLines != 10 {
		t.Errorf("SampledLines = %d, want 10", result.SampledLines)
	}
}

func TestDefaultLayouts_ExamplesParse(t *testing.T) {
	// Every built-in layout must accept its own example token.
	for _, layout := range DefaultLayouts() {
		t.Run(layout.Name, func(t *testing.T) {
			if !layout.Pattern.MatchString(layout.Example) {
				t.Errorf("pattern %q does not match example %q", layout.PatternStr, layout.Example)
			}
			if _, err := time.Parse(layout.Layout, layout.Example); err != nil {
				t.Errorf("layout %q cannot parse example %q: %v", layout.Layout, layout.Example, err)
			}
		})
	}
}
