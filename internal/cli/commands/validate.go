package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/datelinehq/dateline/pkg/config"
	"github.com/datelinehq/dateline/pkg/pipeline"
	"github.com/datelinehq/dateline/pkg/source"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a Dateline configuration file without processing any input.

Checks:
  - YAML syntax
  - Required fields
  - Weekday names
  - Date layouts (by building the pipeline)
  - Source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// A config can pass structural checks but still carry a layout the
	// parser cannot use, so build the pipeline as a dry run.
	if _, err := pipeline.FromConfig(cfg); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Input layout:  %s\n", cfg.InputLayout)
	fmt.Printf("  Output layout: %s\n", cfg.OutputLayout)
	fmt.Printf("  Separator:     %q\n", cfg.Separator)
	fmt.Printf("  Allowed days:  %s\n", strings.Join(cfg.AllowedDays, ", "))

	if len(cfg.AllowedDays) == 0 {
		fmt.Printf("\nWarning: allowed_days is empty, every line will be dropped\n")
	}

	// Check if sources exist (warnings only)
	if len(cfg.Sources) > 0 {
		files, err := source.ExpandGlobs(cfg.Sources)
		if err != nil {
			fmt.Printf("\nWarning: Error expanding source patterns: %v\n", err)
		} else if len(files) == 0 {
			fmt.Printf("\nWarning: No files match source patterns\n")
		} else {
			fmt.Printf("\nSource files matched: %d\n", len(files))
			for _, f := range files {
				fmt.Printf("  - %s\n", f)
			}
		}
	}

	return nil
}
