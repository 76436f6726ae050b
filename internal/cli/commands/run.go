package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/datelinehq/dateline/internal/logging"
	"github.com/datelinehq/dateline/pkg/config"
	"github.com/datelinehq/dateline/pkg/output"
	"github.com/datelinehq/dateline/pkg/pipeline"
	"github.com/datelinehq/dateline/pkg/source"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// DefaultConfigFile is picked up by run when --config is not given.
const DefaultConfigFile = "dateline.yaml"

// RunOptions holds command-line options for the run command.
type RunOptions struct {
	ConfigFile   string
	Output       string
	Days         []string
	InputLayout  string
	OutputLayout string
	Strict       bool
	Verbose      bool
	Quiet        bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run [file ...]",
		Short: "Transform dated lines from files or stdin",
		Long: `Run the date pipeline over input lines.

Each line's leading date is parsed with the input layout and lines falling
on disallowed weekdays are dropped. Surviving lines are rewritten with the
date rendered in the output layout. Lines without a parseable date are
dropped silently.

Input comes from file arguments, from the sources listed in the config
file, or from stdin when neither is given ("-" also reads stdin).

Exit codes:
  0 - Success
  1 - Strict mode: one or more input lines were dropped
  2 - Configuration or runtime error`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Config file (default dateline.yaml when present)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringSliceVar(&opts.Days, "days", nil, "Keep only these weekdays (overrides config)")
	cmd.Flags().StringVar(&opts.InputLayout, "input-layout", "", "Layout of the leading date token (overrides config)")
	cmd.Flags().StringVar(&opts.OutputLayout, "output-layout", "", "Layout for rendering dates (overrides config)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "Exit 1 if any input line was dropped")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Append run accounting to the output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Accounting only, no result lines")

	return cmd
}

func runPipeline(cmd *cobra.Command, args []string, opts *RunOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, configPath, err := loadRunConfig(ctx, opts)
	if err != nil {
		return err
	}

	applyFlagOverrides(cfg, opts)

	// Flag overrides bypass Load, so the merged config is checked again
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	logger := logging.NewLogger(loggerLevel(cfg, opts))
	defer func() { _ = logger.Sync() }()

	pipe, err := pipeline.FromConfig(cfg, pipeline.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("building pipeline: %w", err)
	}

	paths, err := resolveSources(cfg, args)
	if err != nil {
		return err
	}

	start := time.Now()

	lines, err := source.ReadLines(ctx, paths)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	records, stats := pipe.ProcessWithStats(ctx, pipeline.WrapLines(lines))

	report := output.NewReport(pipeline.UnwrapRecords(records), stats, output.Metadata{
		ConfigFile:   configPath,
		Sources:      paths,
		InputLayout:  cfg.InputLayout,
		OutputLayout: cfg.OutputLayout,
		RanAt:        start,
		Duration:     time.Since(start),
	})

	logger.Debug("run complete",
		zap.Int("input", report.Summary.Input),
		zap.Int("emitted", report.Summary.Emitted),
		zap.Int("dropped", report.Summary.Dropped))

	formatter, err := createFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if opts.Strict && report.HasDrops() {
		ExitCode = 1
	}

	return nil
}

// loadRunConfig loads the file named by --config, or DefaultConfigFile when
// one exists in the working directory, or falls back to pure defaults.
func loadRunConfig(ctx context.Context, opts *RunOptions) (*config.Config, string, error) {
	path := opts.ConfigFile
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}

	if path == "" {
		return config.DefaultConfig(), "", nil
	}

	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, "", fmt.Errorf("loading config: %w", err)
	}

	return cfg, path, nil
}

func applyFlagOverrides(cfg *config.Config, opts *RunOptions) {
	if len(opts.Days) > 0 {
		cfg.AllowedDays = opts.Days
	}
	if opts.InputLayout != "" {
		cfg.InputLayout = opts.InputLayout
	}
	if opts.OutputLayout != "" {
		cfg.OutputLayout = opts.OutputLayout
	}
}

func loggerLevel(cfg *config.Config, opts *RunOptions) string {
	if opts.Verbose {
		return "debug"
	}
	return cfg.LogLevel
}

// resolveSources returns the input paths for a run: file arguments win,
// then config sources, then stdin.
func resolveSources(cfg *config.Config, args []string) ([]string, error) {
	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Sources
	}
	if len(patterns) == 0 {
		return []string{source.Stdin}, nil
	}

	paths, err := source.ExpandGlobs(patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding sources: %w", err)
	}

	return paths, nil
}

func createFormatter(format string, formatOpts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}
