package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/datelinehq/dateline/pkg/config"
	"github.com/datelinehq/dateline/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	Separator   string
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <file>",
		Short: "Detect the date layout used by a file",
		Long: `Analyze a file to detect the layout of its leading dates.

Samples lines from the file, splits off the token before the separator,
and tests the token against common date layouts. Reports the best match
with a confidence score and a ready-to-paste configuration snippet.

Recognized layouts include ISO dates and datetimes, slash dates in US
and European order, dotted European dates, compact digit runs, and
month-name dates.

Example:
  dateline detect events.log
  dateline detect --sample 500 big-export.txt
  dateline detect --write-config dateline.yaml events.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().StringVar(&opts.Separator, "separator", config.DefaultSeparator, "Separator between the date token and the rest of the line")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all matching layouts, not just the best one")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write a starter config to this path (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	inputFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(inputFile); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputFile)
	}

	d := detector.New(
		detector.WithSampleSize(opts.SampleSize),
		detector.WithSeparator(opts.Separator),
	)

	result, err := d.DetectFromFile(ctx, inputFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(result, inputFile, opts); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(result, inputFile, opts)
	default:
		return outputDetectText(result, inputFile, opts)
	}
}

func outputDetectText(result *detector.Result, inputFile string, opts *DetectOptions) error {
	fmt.Println("=== Date Layout Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", inputFile)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Lines with dates: %d\n", result.ParsedLines)
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No date layout detected.")
		fmt.Println()
		fmt.Println("Tip: the file may use an uncommon layout or a different separator.")
		fmt.Println("Check the first few lines manually, or retry with --separator.")
		return nil
	}

	best := result.BestMatch()
	fmt.Printf("Detected layout: %s\n", best.Layout.Name)
	fmt.Printf("Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Println()
	fmt.Printf("Sample match:\n  %s\n", best.SampleLine)
	fmt.Printf("Parsed as: %s\n", best.ParsedDate.Format("Monday, January 2, 2006"))
	fmt.Println()

	if result.AmbiguityNote != "" {
		fmt.Printf("Note: %s\n", result.AmbiguityNote)
		fmt.Println()
	}

	fmt.Println("--- Configuration snippet (copy to your config file) ---")
	fmt.Println()
	fmt.Printf("input_layout: %q\n", best.Layout.Layout)
	fmt.Println()

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println("--- Alternative layouts ---")
		for i, m := range result.Matches[1:] {
			fmt.Printf("%d. %s (%.1f%% confidence)\n", i+2, m.Layout.Name, m.Confidence*100)
			fmt.Printf("   layout: %q\n", m.Layout.Layout)
		}
		fmt.Println()
	}

	return nil
}

// JSONMatch represents a layout match in JSON output.
type JSONMatch struct {
	Name       string  `json:"name"`
	Layout     string  `json:"layout"`
	Pattern    string  `json:"pattern"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line"`
	Ambiguous  bool    `json:"ambiguous,omitempty"`
}

// JSONOutput represents the full JSON output of the detect command.
type JSONOutput struct {
	File          string      `json:"file"`
	Matches       []JSONMatch `json:"matches"`
	SampledLines  int         `json:"sampled_lines"`
	ParsedLines   int         `json:"parsed_lines"`
	AmbiguityNote string      `json:"ambiguity_note,omitempty"`
}

func outputDetectJSON(result *detector.Result, inputFile string, opts *DetectOptions) error {
	out := JSONOutput{
		File:          inputFile,
		SampledLines:  result.SampledLines,
		ParsedLines:   result.ParsedLines,
		AmbiguityNote: result.AmbiguityNote,
		Matches:       make([]JSONMatch, 0),
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1]
	}

	for _, m := range matches {
		out.Matches = append(out.Matches, JSONMatch{
			Name:       m.Layout.Name,
			Layout:     m.Layout.Layout,
			Pattern:    m.Layout.PatternStr,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
			Ambiguous:  m.Layout.Ambiguous,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeStarterConfig generates a starter config file with the detected layout.
func writeStarterConfig(result *detector.Result, inputFile string, opts *DetectOptions) error {
	configPath := opts.WriteConfig

	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	if !result.HasMatch() {
		return fmt.Errorf("cannot generate config: no date layout detected")
	}

	content := generateStarterConfig(inputFile, result.BestMatch(), opts.Separator)

	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Wrote starter config to: %s\n\n", configPath)
	return nil
}

// generateStarterConfig creates a YAML config template for the detected layout.
func generateStarterConfig(inputFile string, match *detector.LayoutMatch, separator string) string {
	absInputFile := inputFile
	if abs, err := filepath.Abs(inputFile); err == nil {
		absInputFile = abs
	}

	days := ""
	for _, day := range config.WeekdayNames() {
		days += fmt.Sprintf("  - %s\n", day)
	}

	return fmt.Sprintf(`# Dateline configuration
# Generated by: dateline detect
# Detected layout: %s (%.0f%% confidence)

input_layout: %q
output_layout: %q
separator: %q

# Weekdays to keep. Remove entries to filter; an explicit empty list
# drops every line.
allowed_days:
%s
sources:
  - %s
  # Add more files or use globs:
  # - /var/log/myapp/*.log
`, match.Layout.Name, match.Confidence*100,
		match.Layout.Layout,
		config.DefaultOutputLayout,
		separator,
		days,
		absInputFile)
}
